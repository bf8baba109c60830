// Package content holds the portfolio's static collections: projects,
// skills, education and the owner's profile. The collections are seeded at
// build time from an embedded YAML document and never change at runtime.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// ErrUnknownProject is returned when a lookup names a project that is not
// part of the catalog.
var ErrUnknownProject = errors.New("unknown project")

// Project is one portfolio entry.
type Project struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
	Role        string `yaml:"role" json:"role"`
	Concept     string `yaml:"concept" json:"concept"`
	ImageURL    string `yaml:"image_url" json:"image_url"`
	Year        string `yaml:"year" json:"year"`
}

// SkillGroup is a labelled, ordered list of skills.
type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

// EducationEntry is one school on the About panel.
type EducationEntry struct {
	School  string `yaml:"school" json:"school"`
	Degree  string `yaml:"degree" json:"degree"`
	Period  string `yaml:"period" json:"period"`
	Details string `yaml:"details" json:"details"`
}

// Link is a labelled outbound link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Profile is the site owner's copy. Quote and Philosophy are Markdown.
type Profile struct {
	Name               string `yaml:"name" json:"name"`
	Headline           string `yaml:"headline" json:"headline"`
	Location           string `yaml:"location" json:"location"`
	Email              string `yaml:"email" json:"email"`
	Phone              string `yaml:"phone" json:"phone"`
	PhoneDial          string `yaml:"phone_dial" json:"phone_dial"`
	PortraitURL        string `yaml:"portrait_url" json:"portrait_url"`
	ProjectsHeadline   string `yaml:"projects_headline" json:"projects_headline"`
	ProjectsIntro      string `yaml:"projects_intro" json:"projects_intro"`
	PhilosophyHeadline string `yaml:"philosophy_headline" json:"philosophy_headline"`
	PhilosophyQuote    string `yaml:"philosophy_quote" json:"philosophy_quote"`
	Philosophy         string `yaml:"philosophy" json:"philosophy"`
	ContactHeadline    string `yaml:"contact_headline" json:"contact_headline"`
	ContactIntro       string `yaml:"contact_intro" json:"contact_intro"`
	Copyright          string `yaml:"copyright" json:"copyright"`
	Socials            []Link `yaml:"socials" json:"socials"`
	FooterLinks        []Link `yaml:"footer_links" json:"footer_links"`
}

type seed struct {
	Profile   Profile          `yaml:"profile"`
	Projects  []Project        `yaml:"projects"`
	Skills    []SkillGroup     `yaml:"skills"`
	Education []EducationEntry `yaml:"education"`
}

// Catalog is the immutable set of records the site renders.
type Catalog struct {
	profile   Profile
	projects  []Project
	skills    []SkillGroup
	education []EducationEntry
	byID      map[string]int
}

// ProjectRef refers to a canonical project record inside a Catalog. Only a
// Catalog hands out non-zero refs, so a ref always names a member of the
// collection.
type ProjectRef struct {
	c *Catalog
	i int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded seed: %v", err))
	}
	return c
})

// Default returns the catalog built from the embedded seed.
func Default() *Catalog {
	return defaultCatalog()
}

// Parse builds a catalog from a YAML seed document. Project identifiers must
// be non-empty and unique.
func Parse(data []byte) (*Catalog, error) {
	var s seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	byID := make(map[string]int, len(s.Projects))
	for i, p := range s.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %d (%q) has no id", i, p.Title)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate project id %q", p.ID)
		}
		byID[p.ID] = i
	}

	return &Catalog{
		profile:   s.Profile,
		projects:  s.Projects,
		skills:    s.Skills,
		education: s.Education,
		byID:      byID,
	}, nil
}

// Profile returns the owner's profile.
func (c *Catalog) Profile() Profile { return c.profile }

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// Projects returns refs to every project in seed order.
func (c *Catalog) Projects() []ProjectRef {
	refs := make([]ProjectRef, len(c.projects))
	for i := range c.projects {
		refs[i] = ProjectRef{c: c, i: i}
	}
	return refs
}

// At returns the ref for the i-th project in seed order.
func (c *Catalog) At(i int) (ProjectRef, bool) {
	if i < 0 || i >= len(c.projects) {
		return ProjectRef{}, false
	}
	return ProjectRef{c: c, i: i}, true
}

// Lookup resolves a project identifier to its ref.
func (c *Catalog) Lookup(id string) (ProjectRef, error) {
	i, ok := c.byID[id]
	if !ok {
		return ProjectRef{}, fmt.Errorf("%w: %q", ErrUnknownProject, id)
	}
	return ProjectRef{c: c, i: i}, nil
}

// Skills returns the skill groups in seed order.
func (c *Catalog) Skills() []SkillGroup {
	out := make([]SkillGroup, len(c.skills))
	for i, g := range c.skills {
		out[i] = SkillGroup{Category: g.Category, Items: append([]string(nil), g.Items...)}
	}
	return out
}

// Education returns the education entries in seed order.
func (c *Catalog) Education() []EducationEntry {
	return append([]EducationEntry(nil), c.education...)
}

// IsZero reports whether r refers to nothing.
func (r ProjectRef) IsZero() bool { return r.c == nil }

// Project returns the canonical record r refers to. It panics on a zero ref.
func (r ProjectRef) Project() Project {
	if r.c == nil {
		panic("content: Project called on zero ProjectRef")
	}
	return r.c.projects[r.i]
}

// ID returns the referenced project's identifier, or "" for a zero ref.
func (r ProjectRef) ID() string {
	if r.c == nil {
		return ""
	}
	return r.c.projects[r.i].ID
}

// Index returns the position of the referenced project in seed order, or -1
// for a zero ref.
func (r ProjectRef) Index() int {
	if r.c == nil {
		return -1
	}
	return r.i
}
