package web

import (
	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/view"
)

// sceneJSON is the wire form of a view.Scene for non-HTML surfaces.
type sceneJSON struct {
	Session   string           `json:"session,omitempty"`
	ActiveTab view.Tab         `json:"active_tab"`
	Nav       navJSON          `json:"nav"`
	Panel     panelJSON        `json:"panel"`
	Overlay   *content.Project `json:"overlay"`
	Footer    footerJSON       `json:"footer"`
}

type navJSON struct {
	Brand    string        `json:"brand"`
	Headline string        `json:"headline"`
	Items    []navItemJSON `json:"items"`
	MenuOpen bool          `json:"menu_open"`
}

type navItemJSON struct {
	Tab    view.Tab `json:"tab"`
	Label  string   `json:"label"`
	Active bool     `json:"active"`
}

type panelJSON struct {
	Tab       view.Tab                 `json:"tab"`
	Headline  string                   `json:"headline,omitempty"`
	Intro     string                   `json:"intro,omitempty"`
	Projects  []content.Project        `json:"projects,omitempty"`
	Profile   *content.Profile         `json:"profile,omitempty"`
	Education []content.EducationEntry `json:"education,omitempty"`
	Skills    []content.SkillGroup     `json:"skills,omitempty"`
}

type footerJSON struct {
	Copyright string         `json:"copyright"`
	Links     []content.Link `json:"links"`
}

func encodeScene(id string, s view.Scene) sceneJSON {
	out := sceneJSON{
		Session:   id,
		ActiveTab: s.ActiveTab(),
		Nav: navJSON{
			Brand:    s.Nav.Brand,
			Headline: s.Nav.Headline,
			MenuOpen: s.Nav.MenuOpen,
		},
		Panel:  encodePanel(s.Panel),
		Footer: footerJSON{Copyright: s.Footer.Copyright, Links: s.Footer.Links},
	}
	for _, it := range s.Nav.Items {
		out.Nav.Items = append(out.Nav.Items, navItemJSON{Tab: it.Tab, Label: it.Label, Active: it.Active})
	}
	if s.Overlay != nil {
		p := s.Overlay.Project
		out.Overlay = &p
	}
	return out
}

func encodePanel(p view.Panel) panelJSON {
	out := panelJSON{Tab: p.Tab()}
	switch p := p.(type) {
	case view.ProjectsPanel:
		out.Headline = p.Headline
		out.Intro = p.Intro
		out.Projects = make([]content.Project, 0, len(p.Cards))
		for _, card := range p.Cards {
			out.Projects = append(out.Projects, card.Project)
		}
	case view.AboutPanel:
		prof := p.Profile
		out.Profile = &prof
		out.Education = p.Education
		out.Skills = p.Skills
	case view.ContactPanel:
		prof := p.Profile
		out.Profile = &prof
	}
	return out
}
