package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/motion"
	"github.com/alexrivera/archfolio/internal/view"
)

// HTMXSrc is the script the page loads for its interactions.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page renders the full document for a freshly mounted session.
func Page(scene view.Scene, routes Routes) g.Node {
	title := scene.Nav.Brand + " · " + scene.Nav.Headline
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				h.Script(h.Src(HTMXSrc), g.Attr("defer")),
			),
			h.Body(App(scene, routes, motion.OnMount)),
		),
	)
}

// App renders the swappable #app region: navbar, active panel, footer and
// the overlay when a project is selected.
func App(scene view.Scene, routes Routes, cues motion.Cues) g.Node {
	var overlay g.Node
	if scene.Overlay != nil {
		overlay = Lightbox(scene.Overlay.Project, routes.CloseProject(), cues.Overlay)
	}
	return h.Div(
		h.ID(AppID),
		g.Attr("data-tab", scene.ActiveTab().String()),
		g.Attr("style", motion.PanelExit.Vars("exit")),
		Navbar(scene.Nav, routes, cues),
		h.Main(h.Class("content"), Panel(scene.Panel, routes, cues)),
		Footer(scene.Footer),
		overlay,
	)
}

// Footer renders the page footer.
func Footer(f view.Footer) g.Node {
	return h.Footer(
		h.Class("footer"),
		h.Div(h.Class("copyright"), g.Text(f.Copyright)),
		h.Div(
			h.Class("footer-links"),
			g.Map(f.Links, func(l content.Link) g.Node {
				return h.A(h.Href(l.URL), g.Text(l.Label))
			}),
		),
	)
}

// Gone renders the fragment returned for an expired session. The response
// also carries HX-Refresh so the browser remounts.
func Gone() g.Node {
	return h.Div(h.ID(AppID), h.P(h.Class("notice"), g.Text("This page has expired. Reloading…")))
}
