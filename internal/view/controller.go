// Package view implements the portfolio's view-state machine: the active
// tab, the selected project and the navbar menu, plus the Scene every
// display surface renders from. Transitions are synchronous and total.
package view

import (
	"fmt"

	"github.com/alexrivera/archfolio/internal/content"
)

// ChangeKind classifies a state transition.
type ChangeKind int

const (
	ChangeTab ChangeKind = iota + 1
	ChangeOverlayOpen
	ChangeOverlayClose
	ChangeMenu
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTab:
		return "tab"
	case ChangeOverlayOpen:
		return "overlay_open"
	case ChangeOverlayClose:
		return "overlay_close"
	case ChangeMenu:
		return "menu"
	default:
		return fmt.Sprintf("change(%d)", int(k))
	}
}

// Change describes one transition. Renderers use it to decide which regions
// animate; the state machine itself does not care.
type Change struct {
	Kind ChangeKind
	From Tab
	To   Tab
	// Project is set for overlay changes.
	Project content.ProjectRef
	// MenuOpen is the menu state after the change.
	MenuOpen bool
	// MenuClosed is set when a menu selection closed the menu.
	MenuClosed bool
}

// Controller is the single source of truth for the active tab and the
// selected project.
type Controller struct {
	catalog   *content.Catalog
	activeTab Tab
	selected  content.ProjectRef
	nav       Navbar
}

// NewController returns a controller in its mount state: Projects tab, no
// selection, menu closed.
func NewController(catalog *content.Catalog) *Controller {
	c := &Controller{catalog: catalog}
	c.nav.selectTab = c.SelectTab
	return c
}

// Catalog returns the collection the controller renders.
func (c *Controller) Catalog() *content.Catalog { return c.catalog }

// ActiveTab returns the visible tab.
func (c *Controller) ActiveTab() Tab { return c.activeTab }

// Selected returns the selected project, or a zero ref when none is.
func (c *Controller) Selected() content.ProjectRef { return c.selected }

// Navbar returns the controller's navbar.
func (c *Controller) Navbar() *Navbar { return &c.nav }

// SelectTab makes tab the visible panel. Reselecting the active tab is
// allowed and still reports a change. The overlay is left untouched.
func (c *Controller) SelectTab(tab Tab) Change {
	from := c.activeTab
	c.activeTab = tab
	return Change{Kind: ChangeTab, From: from, To: tab, MenuOpen: c.nav.menuOpen}
}

// OpenProject shows the overlay for p.
func (c *Controller) OpenProject(p content.ProjectRef) Change {
	c.selected = p
	return Change{Kind: ChangeOverlayOpen, From: c.activeTab, To: c.activeTab, Project: p, MenuOpen: c.nav.menuOpen}
}

// CloseProject dismisses the overlay.
func (c *Controller) CloseProject() Change {
	prev := c.selected
	c.selected = content.ProjectRef{}
	return Change{Kind: ChangeOverlayClose, From: c.activeTab, To: c.activeTab, Project: prev, MenuOpen: c.nav.menuOpen}
}

// Scene describes what to display for the current state.
func (c *Controller) Scene() Scene {
	prof := c.catalog.Profile()
	s := Scene{
		Nav: NavState{
			Brand:    prof.Name,
			Headline: prof.Headline,
			Items:    c.nav.Items(c.activeTab),
			MenuOpen: c.nav.menuOpen,
		},
		Panel:  c.panel(prof),
		Footer: Footer{Copyright: prof.Copyright, Links: prof.FooterLinks},
	}
	if !c.selected.IsZero() {
		s.Overlay = &Lightbox{Ref: c.selected, Project: c.selected.Project()}
	}
	return s
}

func (c *Controller) panel(prof content.Profile) Panel {
	switch c.activeTab {
	case TabAbout:
		return AboutPanel{
			Profile:   prof,
			Education: c.catalog.Education(),
			Skills:    c.catalog.Skills(),
		}
	case TabContact:
		return ContactPanel{Profile: prof}
	default:
		refs := c.catalog.Projects()
		cards := make([]Card, len(refs))
		for i, r := range refs {
			cards[i] = Card{Ref: r, Project: r.Project()}
		}
		return ProjectsPanel{
			Headline: prof.ProjectsHeadline,
			Intro:    prof.ProjectsIntro,
			Cards:    cards,
		}
	}
}
