package tui

import "github.com/charmbracelet/lipgloss"

const cardWidth = 30

var (
	accent = lipgloss.Color("#b08d57")
	muted  = lipgloss.Color("241")
	ink    = lipgloss.Color("252")

	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(ink)
	subtleStyle    = lipgloss.NewStyle().Foreground(muted)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(ink).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(ink).Bold(true).Underline(true)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	menuItemStyle   = lipgloss.NewStyle().Foreground(muted)
	menuCursorStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	cardFocusStyle = cardStyle.BorderForeground(accent)

	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 2)

	footerStyle = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
)
