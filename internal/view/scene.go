package view

import "github.com/alexrivera/archfolio/internal/content"

// Panel is the content shown for the active tab. It is a closed union of
// ProjectsPanel, AboutPanel and ContactPanel; renderers switch on the
// concrete type.
type Panel interface {
	Tab() Tab
	isPanel()
}

// Card is one project summary on the Projects panel. Ref is what the card's
// click action opens.
type Card struct {
	Ref     content.ProjectRef
	Project content.Project
}

// ProjectsPanel lists every project in seed order.
type ProjectsPanel struct {
	Headline string
	Intro    string
	Cards    []Card
}

// AboutPanel shows the profile, education and skills.
type AboutPanel struct {
	Profile   content.Profile
	Education []content.EducationEntry
	Skills    []content.SkillGroup
}

// ContactPanel shows contact details and the inert message form.
type ContactPanel struct {
	Profile content.Profile
}

func (ProjectsPanel) Tab() Tab { return TabProjects }
func (AboutPanel) Tab() Tab    { return TabAbout }
func (ContactPanel) Tab() Tab  { return TabContact }

func (ProjectsPanel) isPanel() {}
func (AboutPanel) isPanel()    {}
func (ContactPanel) isPanel()  {}

// NavItem is one tab control in the navbar.
type NavItem struct {
	Tab    Tab
	Label  string
	Active bool
}

// NavState is what the navbar renders.
type NavState struct {
	Brand    string
	Headline string
	Items    []NavItem
	MenuOpen bool
}

// Lightbox is the detail overlay for the selected project.
type Lightbox struct {
	Ref     content.ProjectRef
	Project content.Project
}

// Scene is the full description a display surface needs: which panel to
// show, the navbar and, when a project is selected, the overlay above it.
type Scene struct {
	Nav     NavState
	Panel   Panel
	Overlay *Lightbox
	Footer  Footer
}

// Footer is the page footer.
type Footer struct {
	Copyright string
	Links     []content.Link
}

// ActiveTab returns the tab of the visible panel.
func (s Scene) ActiveTab() Tab { return s.Panel.Tab() }
