package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexrivera/archfolio/internal/motion"
	"github.com/alexrivera/archfolio/internal/view"
)

// Navbar renders the brand, the tab bar, the menu toggle and, when open,
// the collapsible menu.
func Navbar(nav view.NavState, routes Routes, cues motion.Cues) g.Node {
	expanded := "false"
	if nav.MenuOpen {
		expanded = "true"
	}

	bar := make([]g.Node, 0, len(nav.Items))
	for _, item := range nav.Items {
		bar = append(bar, h.Button(
			h.Type("button"),
			h.Class(tabClass("tab", item.Active)),
			g.Attr("data-tab", item.Tab.String()),
			g.If(item.Active, g.Attr("aria-current", "page")),
			routes.SelectTab(item.Tab).Attrs(),
			g.Text(item.Label),
			g.If(item.Active, h.Span(h.Class("tab-underline"))),
		))
	}

	return h.Nav(
		h.Class("navbar"),
		h.Div(
			h.Class("navbar-inner"),
			h.Div(
				h.Class("brand"),
				animate(cues.Mount, motion.Brand, ""),
				h.Span(h.Class("brand-name"), g.Text(nav.Brand)),
				h.Span(h.Class("brand-headline"), g.Text(nav.Headline)),
			),
			h.Div(append([]g.Node{h.Class("tabs")}, bar...)...),
			h.Button(
				h.Type("button"),
				h.Class("menu-toggle"),
				g.Attr("aria-label", "Menu"),
				g.Attr("aria-expanded", expanded),
				routes.ToggleMenu().Attrs(),
				g.Text("☰"),
			),
		),
		g.If(nav.MenuOpen, menu(nav, routes, cues)),
	)
}

func menu(nav view.NavState, routes Routes, cues motion.Cues) g.Node {
	items := make([]g.Node, 0, len(nav.Items)+2)
	items = append(items, h.Class("menu"), animate(cues.Menu, motion.Menu, ""))
	for _, item := range nav.Items {
		items = append(items, h.Button(
			h.Type("button"),
			h.Class(tabClass("menu-item", item.Active)),
			g.Attr("data-tab", item.Tab.String()),
			routes.MenuSelect(item.Tab).Attrs(),
			g.Text(item.Label),
		))
	}
	return h.Div(items...)
}

func tabClass(base string, active bool) string {
	if active {
		return base + " is-active"
	}
	return base
}
