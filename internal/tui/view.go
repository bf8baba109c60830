package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/view"
)

func (m *Model) View() string {
	scene := m.ctrl.Scene()

	var body string
	if scene.Overlay != nil {
		body = renderLightbox(scene.Overlay.Project, m.width)
	} else {
		body = m.renderPanel(scene.Panel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(scene.Nav),
		"",
		body,
		footerStyle.Render(scene.Footer.Copyright),
		m.help.View(m.keys),
	)
}

func (m *Model) renderNav(nav view.NavState) string {
	brand := brandStyle.Render(nav.Brand) + subtleStyle.Render("  "+nav.Headline)

	if !m.collapsed() {
		tabs := make([]string, 0, len(nav.Items))
		for _, it := range nav.Items {
			style := tabStyle
			if it.Active {
				style = activeTabStyle
			}
			tabs = append(tabs, style.Render(it.Label))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, brand, "   ", strings.Join(tabs, ""))
	}

	toggle := subtleStyle.Render("[m] ☰")
	if nav.MenuOpen {
		toggle = labelStyle.Render("[m] ✕")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", toggle)
	if !nav.MenuOpen {
		return header
	}

	rows := make([]string, 0, len(nav.Items))
	for i, it := range nav.Items {
		prefix, style := "  ", menuItemStyle
		if i == m.menuCursor {
			prefix, style = "› ", menuCursorStyle
		}
		label := it.Label
		if it.Active {
			label += " •"
		}
		rows = append(rows, style.Render(prefix+label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, menuStyle.Render(strings.Join(rows, "\n")))
}

func (m *Model) renderPanel(p view.Panel) string {
	switch p := p.(type) {
	case view.ProjectsPanel:
		return m.renderProjects(p)
	case view.AboutPanel:
		return renderAbout(p)
	case view.ContactPanel:
		return renderContact(p)
	default:
		panic(fmt.Sprintf("tui: unhandled panel %T", p))
	}
}

func (m *Model) renderProjects(p view.ProjectsPanel) string {
	cols := m.columns()
	var rows []string
	for start := 0; start < len(p.Cards); start += cols {
		end := min(start+cols, len(p.Cards))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, renderCard(p.Cards[i].Project, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(p.Headline),
		subtleStyle.Render(p.Intro),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func renderCard(p content.Project, focused bool) string {
	style := cardStyle
	if focused {
		style = cardFocusStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		brandStyle.Render(p.Title),
		subtleStyle.Render(p.Category+" · "+p.Year),
	))
}

func renderLightbox(p content.Project, width int) string {
	lines := []string{
		labelStyle.Render(p.Category + " — " + p.Year),
		headingStyle.Render(p.Title),
		labelStyle.Render("The Concept"),
		"“" + p.Concept + "”",
		"",
		labelStyle.Render("Description"),
		p.Description,
		"",
		labelStyle.Render("My Role"),
		p.Role,
		"",
		subtleStyle.Render("View Full Case Study ›"),
	}
	style := lightboxStyle
	if width > 0 {
		style = style.Width(min(width-4, 80))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderAbout(p view.AboutPanel) string {
	prof := p.Profile
	var b strings.Builder

	b.WriteString(headingStyle.Render(prof.PhilosophyHeadline) + "\n")
	b.WriteString(plain(prof.PhilosophyQuote) + "\n\n")
	b.WriteString(plain(prof.Philosophy) + "\n\n")
	b.WriteString(subtleStyle.Render("⌖ "+prof.Location+"   ✉ "+prof.Email) + "\n\n")

	b.WriteString(labelStyle.Render("Education") + "\n")
	for _, e := range p.Education {
		fmt.Fprintf(&b, "%s\n  %s · %s\n", brandStyle.Render(e.School), e.Degree, e.Period)
		if e.Details != "" {
			b.WriteString("  " + subtleStyle.Render(e.Details) + "\n")
		}
	}

	b.WriteString("\n" + labelStyle.Render("Technical Skills") + "\n")
	for _, s := range p.Skills {
		fmt.Fprintf(&b, "%s: %s\n", brandStyle.Render(s.Category), strings.Join(s.Items, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderContact(p view.ContactPanel) string {
	prof := p.Profile
	lines := []string{
		headingStyle.Render(prof.ContactHeadline),
		subtleStyle.Render(prof.ContactIntro),
		"",
		labelStyle.Render("Email") + "  " + prof.Email,
		labelStyle.Render("Phone") + "  " + prof.Phone,
		"",
	}
	for _, s := range prof.Socials {
		lines = append(lines, brandStyle.Render(s.Label)+"  "+subtleStyle.Render(s.URL))
	}
	return strings.Join(lines, "\n")
}

// plain drops Markdown emphasis markers for terminal output.
func plain(md string) string {
	return strings.NewReplacer("**", "", "*", "", "__", "").Replace(md)
}
