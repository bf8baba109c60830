package view

import (
	"fmt"

	"github.com/alexrivera/archfolio/internal/content"
)

// EventKind names a user operation.
type EventKind int

const (
	EventSelectTab EventKind = iota + 1
	EventMenuSelect
	EventToggleMenu
	EventOpenProject
	EventCloseProject
)

// Event is a transport-neutral user interaction. Surfaces decode their
// input into an Event and hand it to Dispatch.
type Event struct {
	Kind    EventKind
	Tab     Tab
	Project content.ProjectRef
}

// SelectTabEvent selects tab from the tab bar.
func SelectTabEvent(t Tab) Event { return Event{Kind: EventSelectTab, Tab: t} }

// MenuSelectEvent selects tab from the collapsible menu.
func MenuSelectEvent(t Tab) Event { return Event{Kind: EventMenuSelect, Tab: t} }

// ToggleMenuEvent flips the collapsible menu.
func ToggleMenuEvent() Event { return Event{Kind: EventToggleMenu} }

// OpenProjectEvent opens the overlay for p.
func OpenProjectEvent(p content.ProjectRef) Event { return Event{Kind: EventOpenProject, Project: p} }

// CloseProjectEvent dismisses the overlay.
func CloseProjectEvent() Event { return Event{Kind: EventCloseProject} }

// Dispatch applies ev and returns the resulting change.
func (c *Controller) Dispatch(ev Event) Change {
	switch ev.Kind {
	case EventSelectTab:
		return c.nav.Select(ev.Tab, FromBar)
	case EventMenuSelect:
		return c.nav.Select(ev.Tab, FromMenu)
	case EventToggleMenu:
		return c.nav.ToggleMenu()
	case EventOpenProject:
		return c.OpenProject(ev.Project)
	case EventCloseProject:
		return c.CloseProject()
	default:
		panic(fmt.Sprintf("view: unhandled event kind %d", ev.Kind))
	}
}
