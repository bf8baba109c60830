package ui

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/motion"
	"github.com/alexrivera/archfolio/internal/view"
)

const cardStagger = 60 * time.Millisecond

// Panel renders the scene's panel. Every panel variant has a case.
func Panel(p view.Panel, routes Routes, cues motion.Cues) g.Node {
	var body g.Node
	switch p := p.(type) {
	case view.ProjectsPanel:
		body = projectsPanel(p, routes, cues.Panel)
	case view.AboutPanel:
		body = aboutPanel(p)
	case view.ContactPanel:
		body = contactPanel(p)
	default:
		panic(fmt.Sprintf("ui: unhandled panel %T", p))
	}
	return h.Section(
		h.Class("panel panel-"+p.Tab().String()),
		g.Attr("data-panel", p.Tab().String()),
		animate(cues.Panel, motion.PanelEnter, ""),
		body,
	)
}

func projectsPanel(p view.ProjectsPanel, routes Routes, enter bool) g.Node {
	cards := make([]g.Node, 0, len(p.Cards)+2)
	hover := fmt.Sprintf("--motion-hover-y:%dpx;", motion.CardHover.OffsetY)
	cards = append(cards, h.Class("card-grid"), g.Attr("style", hover))
	for i, c := range p.Cards {
		cards = append(cards, ProjectCard(c.Project, routes.OpenProject(c.Ref), enter, motion.Stagger(i, cardStagger)))
	}

	return g.Group{
		h.Header(
			h.Class("panel-header"),
			h.H1(h.Class("display"), g.Text(p.Headline)),
			h.P(h.Class("lede"), g.Text(p.Intro)),
		),
		h.Div(cards...),
	}
}

func aboutPanel(p view.AboutPanel) g.Node {
	prof := p.Profile
	return h.Div(
		h.Class("about-grid"),
		h.Div(
			h.Class("about-aside"),
			h.Div(h.Class("portrait"), h.Img(h.Src(prof.PortraitURL), h.Alt(prof.Name), g.Attr("referrerpolicy", "no-referrer"))),
			h.Ul(
				h.Class("facts"),
				h.Li(h.Span(h.Class("icon"), g.Text("⌖")), h.Span(g.Text(prof.Location))),
				h.Li(h.Span(h.Class("icon"), g.Text("✉")), h.Span(g.Text(prof.Email))),
			),
		),
		h.Div(
			h.Class("about-main"),
			h.Section(
				h.Class("philosophy"),
				h.H1(h.Class("display"), g.Text(prof.PhilosophyHeadline)),
				h.Div(h.Class("quote"), Markdown(prof.PhilosophyQuote)),
				h.Div(h.Class("lede"), Markdown(prof.Philosophy)),
			),
			h.Div(
				h.Class("about-columns"),
				h.Section(
					h.H3(h.Class("label"), g.Text("Education")),
					g.Map(p.Education, educationEntry),
				),
				h.Section(
					h.H3(h.Class("label"), g.Text("Technical Skills")),
					g.Map(p.Skills, skillGroup),
				),
			),
		),
	)
}

func educationEntry(e content.EducationEntry) g.Node {
	return h.Div(
		h.Class("education"),
		h.H4(g.Text(e.School)),
		h.P(h.Class("degree"), g.Text(e.Degree)),
		h.P(h.Class("period"), g.Text(e.Period)),
		h.P(h.Class("details"), g.Text(e.Details)),
	)
}

func skillGroup(sg content.SkillGroup) g.Node {
	return h.Div(
		h.Class("skills"),
		h.H4(g.Text(sg.Category)),
		h.Div(
			h.Class("chips"),
			g.Map(sg.Items, func(s string) g.Node { return h.Span(h.Class("chip"), g.Text(s)) }),
		),
	)
}

func contactPanel(p view.ContactPanel) g.Node {
	prof := p.Profile
	return g.Group{
		h.Header(
			h.Class("panel-header centered"),
			h.H1(h.Class("display"), g.Text(prof.ContactHeadline)),
			h.P(h.Class("lede"), g.Text(prof.ContactIntro)),
		),
		h.Div(
			h.Class("contact-grid"),
			h.Div(
				h.H3(h.Class("label"), g.Text("Contact Details")),
				h.A(h.Class("contact-line"), h.Href("mailto:"+prof.Email),
					h.Span(h.Class("label"), g.Text("Email")),
					h.Span(h.Class("value"), g.Text(prof.Email)),
				),
				h.A(h.Class("contact-line"), h.Href("tel:"+prof.PhoneDial),
					h.Span(h.Class("label"), g.Text("Phone")),
					h.Span(h.Class("value"), g.Text(prof.Phone)),
				),
				h.Div(
					h.Span(h.Class("label"), g.Text("Social")),
					h.Div(
						h.Class("socials"),
						g.Map(prof.Socials, func(l content.Link) g.Node {
							return h.A(h.Class("social"), h.Href(l.URL), g.Text(l.Label))
						}),
					),
				),
			),
			contactForm(),
		),
	}
}

// contactForm is the message form. Submission is swallowed in the browser;
// there is no handler behind it.
func contactForm() g.Node {
	field := func(id, label string, input g.Node) g.Node {
		return h.Div(
			h.Class("field"),
			h.Label(h.For(id), g.Text(label)),
			input,
		)
	}
	return h.Div(
		h.Class("contact-form"),
		h.H3(h.Class("label"), g.Text("Send a Message")),
		h.Form(
			g.Attr("onsubmit", "event.preventDefault()"),
			field("contact-name", "Full Name", h.Input(h.ID("contact-name"), h.Type("text"), h.Placeholder("John Doe"))),
			field("contact-email", "Email Address", h.Input(h.ID("contact-email"), h.Type("email"), h.Placeholder("john@example.com"))),
			field("contact-message", "Message", h.Textarea(h.ID("contact-message"), h.Rows("4"), h.Placeholder("Tell me about your project..."))),
			h.Button(h.Type("submit"), h.Class("submit"), g.Text("Send Inquiry")),
		),
	)
}
