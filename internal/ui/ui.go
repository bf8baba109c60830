// Package ui renders scenes as HTML with gomponents. Interactions are HTMX
// requests that swap the #app region with the server's next render.
package ui

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	g "maragu.dev/gomponents"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/motion"
	"github.com/alexrivera/archfolio/internal/view"
)

// AppID is the element id every interaction swaps.
const AppID = "app"

// Action is a pre-bound interaction: the request a control fires when used.
type Action struct {
	Method string
	URL    string
	Swap   string
}

// Attrs renders the action as HTMX attributes targeting the #app region.
func (a Action) Attrs() g.Node {
	swap := a.Swap
	if swap == "" {
		swap = "outerHTML"
	}
	return g.Group{
		g.Attr("hx-"+strings.ToLower(a.Method), a.URL),
		g.Attr("hx-target", "#"+AppID),
		g.Attr("hx-swap", swap),
	}
}

// Routes builds the actions for one mounted session.
type Routes struct {
	Prefix string
}

// SessionRoutes returns the routes for session id.
func SessionRoutes(id string) Routes {
	return Routes{Prefix: "/s/" + url.PathEscape(id)}
}

// tabSwap holds the outgoing panel on screen for its exit animation.
var tabSwap = fmt.Sprintf("outerHTML swap:%dms", motion.PanelExit.Duration.Milliseconds())

func (r Routes) SelectTab(t view.Tab) Action {
	return Action{Method: "POST", URL: r.Prefix + "/tabs/" + t.String(), Swap: tabSwap}
}

func (r Routes) MenuSelect(t view.Tab) Action {
	return Action{Method: "POST", URL: r.Prefix + "/menu/tabs/" + t.String(), Swap: tabSwap}
}

func (r Routes) ToggleMenu() Action {
	return Action{Method: "POST", URL: r.Prefix + "/menu/toggle"}
}

func (r Routes) OpenProject(p content.ProjectRef) Action {
	return Action{Method: "POST", URL: r.Prefix + "/projects/" + url.PathEscape(p.ID())}
}

func (r Routes) CloseProject() Action {
	return Action{Method: "DELETE", URL: r.Prefix + "/projects"}
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// Markdown renders src to HTML. On a conversion error the text is emitted
// escaped instead.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return g.Raw(buf.String())
}

// animate returns the class and style for a region that plays d when on
// is set.
func animate(on bool, d motion.Descriptor, extraStyle string) g.Node {
	if !on {
		if extraStyle == "" {
			return nil
		}
		return g.Attr("style", extraStyle)
	}
	return g.Group{
		g.Attr("data-motion", "enter"),
		g.Attr("style", d.Style()+extraStyle),
	}
}
