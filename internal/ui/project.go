package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/motion"
)

// ProjectCard renders one project summary in a 4:3 frame. onClick is
// already bound to p by the caller.
func ProjectCard(p content.Project, onClick Action, enter bool, delay string) g.Node {
	return h.Article(
		h.Class("card"),
		g.Attr("data-project", p.ID),
		animate(enter, motion.CardEnter, delay),
		onClick.Attrs(),
		h.Div(
			h.Class("card-frame"),
			h.Img(h.Src(p.ImageURL), h.Alt(p.Title), g.Attr("referrerpolicy", "no-referrer"), g.Attr("loading", "lazy")),
			h.Div(h.Class("card-hover"), h.Span(h.Class("card-arrow"), g.Text("↗"))),
		),
		h.Div(
			h.Class("card-meta"),
			h.Div(
				h.H3(h.Class("card-title"), g.Text(p.Title)),
				h.P(h.Class("card-category"), g.Text(p.Category)),
			),
			h.Span(h.Class("card-year"), g.Text(p.Year)),
		),
	)
}

// Lightbox renders the detail overlay for p. The close button and the
// backdrop fire the same onClose action.
func Lightbox(p content.Project, onClose Action, enter bool) g.Node {
	return h.Div(
		h.Class("lightbox"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-label", p.Title),
		h.Div(h.Class("lightbox-backdrop"), animate(enter, motion.Backdrop, ""), onClose.Attrs()),
		h.Div(
			h.Class("lightbox-body"),
			animate(enter, motion.LightboxBody, ""),
			h.Button(h.Class("lightbox-close"), g.Attr("aria-label", "Close"), onClose.Attrs(), g.Text("✕")),
			h.Div(
				h.Class("lightbox-image"),
				h.Img(h.Src(p.ImageURL), h.Alt(p.Title), g.Attr("referrerpolicy", "no-referrer")),
			),
			h.Div(
				h.Class("lightbox-detail"),
				h.Span(h.Class("eyebrow"), g.Text(p.Category+" — "+p.Year)),
				h.H2(h.Class("lightbox-title"), g.Text(p.Title)),
				h.Section(
					h.H4(g.Text("The Concept")),
					h.P(h.Class("concept"), g.Text("\""+p.Concept+"\"")),
				),
				h.Section(
					h.H4(g.Text("Description")),
					h.P(g.Text(p.Description)),
				),
				h.Section(
					h.H4(g.Text("My Role")),
					h.P(g.Text(p.Role)),
				),
				h.Div(
					h.Class("lightbox-footer"),
					h.Button(h.Class("case-study"), h.Type("button"), g.Text("View Full Case Study ›")),
				),
			),
		),
	)
}
