// Package motion holds declarative transition descriptors for the
// portfolio's view changes. The view state machine never reads them;
// renderers look up the cues for a change and decide how to animate.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexrivera/archfolio/internal/view"
)

// Easing is a CSS timing function.
type Easing string

const (
	EaseOut   Easing = "cubic-bezier(0.16, 1, 0.3, 1)"
	EaseInOut Easing = "ease-in-out"
	Linear    Easing = "linear"
)

// Descriptor describes an enter animation from an offset state to rest.
// Offsets are in CSS pixels; Scale and Opacity are the starting values.
type Descriptor struct {
	Duration time.Duration
	OffsetX  int
	OffsetY  int
	Scale    float64
	Opacity  float64
	Easing   Easing
}

var (
	// PanelEnter brings a tab panel in from below.
	PanelEnter = Descriptor{Duration: 400 * time.Millisecond, OffsetY: 20, Scale: 1, Easing: EaseOut}
	// PanelExit sends the outgoing panel upward.
	PanelExit = Descriptor{Duration: 400 * time.Millisecond, OffsetY: -20, Scale: 1, Easing: EaseOut}
	// CardEnter brings a project card in from below.
	CardEnter = Descriptor{Duration: 500 * time.Millisecond, OffsetY: 20, Scale: 1, Easing: EaseOut}
	// CardHover lifts a card under the pointer.
	CardHover = Descriptor{Duration: 300 * time.Millisecond, OffsetY: -8, Scale: 1, Opacity: 1, Easing: EaseOut}
	// Backdrop fades the lightbox backdrop in.
	Backdrop = Descriptor{Duration: 300 * time.Millisecond, Scale: 1, Easing: Linear}
	// LightboxBody scales the lightbox body up.
	LightboxBody = Descriptor{Duration: 300 * time.Millisecond, Scale: 0.9, Easing: EaseOut}
	// Menu drops the collapsible menu down.
	Menu = Descriptor{Duration: 250 * time.Millisecond, OffsetY: -20, Scale: 1, Easing: EaseOut}
	// Brand slides the navbar brand in from the left on mount.
	Brand = Descriptor{Duration: 400 * time.Millisecond, OffsetX: -20, Scale: 1, Easing: EaseOut}
)

// Cues says which regions should play their enter animation after a change.
type Cues struct {
	Mount   bool
	Panel   bool
	Overlay bool
	Menu    bool
}

// OnMount is the cue set for a freshly mounted page.
var OnMount = Cues{Mount: true, Panel: true}

// CuesFor returns the cues for ch. Regions not named keep their rendered
// state and do not replay an animation.
func CuesFor(ch view.Change) Cues {
	switch ch.Kind {
	case view.ChangeTab:
		return Cues{Panel: true}
	case view.ChangeOverlayOpen:
		return Cues{Overlay: true}
	case view.ChangeMenu:
		return Cues{Menu: ch.MenuOpen}
	default:
		return Cues{}
	}
}

// Style renders d as the --motion-* custom properties read by the site
// stylesheet's enter animation.
func (d Descriptor) Style() string { return d.Vars("motion") }

// Vars renders d as CSS custom properties named --<prefix>-*.
func (d Descriptor) Vars(prefix string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--%s-duration:%dms;", prefix, d.Duration.Milliseconds())
	fmt.Fprintf(&b, "--%s-x:%dpx;", prefix, d.OffsetX)
	fmt.Fprintf(&b, "--%s-y:%dpx;", prefix, d.OffsetY)
	fmt.Fprintf(&b, "--%s-scale:%s;", prefix, strconv.FormatFloat(d.Scale, 'f', -1, 64))
	fmt.Fprintf(&b, "--%s-opacity:%s;", prefix, strconv.FormatFloat(d.Opacity, 'f', -1, 64))
	fmt.Fprintf(&b, "--%s-easing:%s;", prefix, d.Easing)
	return b.String()
}

// Stagger returns the CSS animation-delay for the i-th item of a list.
func Stagger(i int, step time.Duration) string {
	return fmt.Sprintf("animation-delay:%dms;", (time.Duration(i) * step).Milliseconds())
}
