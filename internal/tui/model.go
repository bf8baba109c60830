// Package tui is a terminal front-end over the same view controller the
// web server drives.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/view"
)

// Options configures the terminal model.
type Options struct {
	// MenuBreakpoint is the width below which the tab bar collapses into
	// the menu.
	MenuBreakpoint int
}

// Model is the bubbletea model for one terminal session.
type Model struct {
	ctrl *view.Controller
	opts Options
	keys keyMap
	help help.Model

	width  int
	height int

	// cursor is the focused card on the Projects panel.
	cursor int
	// menuCursor is the highlighted entry of the open menu.
	menuCursor int
}

// New creates a model mounted on a fresh controller.
func New(catalog *content.Catalog, opts Options) *Model {
	m := &Model{
		ctrl: view.NewController(catalog),
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.updateKeys()
	return m
}

// Run starts the terminal UI and blocks until the user quits.
func Run(catalog *content.Catalog, opts Options) error {
	_, err := tea.NewProgram(New(catalog, opts), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.collapsed() && m.ctrl.Navbar().MenuOpen() {
			m.ctrl.Dispatch(view.ToggleMenuEvent())
		}
		m.updateKeys()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.updateKeys()
		return m, nil
	}
	return m, nil
}

// collapsed reports whether the tab bar is folded into the menu. Until the
// first size message the terminal is treated as wide.
func (m *Model) collapsed() bool {
	return m.width > 0 && m.width < m.opts.MenuBreakpoint
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case !m.ctrl.Selected().IsZero():
		m.handleOverlayKey(msg)
	case m.ctrl.Navbar().MenuOpen():
		m.handleMenuKey(msg)
	default:
		m.handlePanelKey(msg)
	}
}

// The lightbox is modal: only closing it is possible while it is up.
func (m *Model) handleOverlayKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Back) {
		m.ctrl.Dispatch(view.CloseProjectEvent())
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = (m.menuCursor + len(view.Tabs) - 1) % len(view.Tabs)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = (m.menuCursor + 1) % len(view.Tabs)
	case key.Matches(msg, m.keys.Open):
		m.selectTab(view.MenuSelectEvent(view.Tabs[m.menuCursor]))
	case key.Matches(msg, m.keys.Projects):
		m.selectTab(view.MenuSelectEvent(view.TabProjects))
	case key.Matches(msg, m.keys.About):
		m.selectTab(view.MenuSelectEvent(view.TabAbout))
	case key.Matches(msg, m.keys.Contact):
		m.selectTab(view.MenuSelectEvent(view.TabContact))
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Menu):
		m.ctrl.Dispatch(view.ToggleMenuEvent())
	}
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) {
	active := m.ctrl.ActiveTab()
	switch {
	case key.Matches(msg, m.keys.Projects):
		m.selectTab(view.SelectTabEvent(view.TabProjects))
	case key.Matches(msg, m.keys.About):
		m.selectTab(view.SelectTabEvent(view.TabAbout))
	case key.Matches(msg, m.keys.Contact):
		m.selectTab(view.SelectTabEvent(view.TabContact))
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(view.SelectTabEvent(active.Next()))
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(view.SelectTabEvent(active.Prev()))
	case key.Matches(msg, m.keys.Menu):
		if m.collapsed() {
			m.menuCursor = int(active)
			m.ctrl.Dispatch(view.ToggleMenuEvent())
		}
	}

	if active != view.TabProjects {
		return
	}
	n := m.ctrl.Catalog().Len()
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(m.cursor+1, n-1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < n {
			m.cursor += cols
		}
	case key.Matches(msg, m.keys.Open):
		if ref, ok := m.ctrl.Catalog().At(m.cursor); ok {
			m.ctrl.Dispatch(view.OpenProjectEvent(ref))
		}
	}
}

func (m *Model) selectTab(ev view.Event) {
	m.ctrl.Dispatch(ev)
	m.menuCursor = int(m.ctrl.ActiveTab())
}

// columns is the number of cards per row on the Projects panel.
func (m *Model) columns() int {
	if m.width == 0 {
		return 3
	}
	return max(1, min(3, (m.width-2)/(cardWidth+4)))
}

// updateKeys enables the bindings that apply in the current state so the
// help footer only lists keys that do something.
func (m *Model) updateKeys() {
	overlay := !m.ctrl.Selected().IsZero()
	menu := m.ctrl.Navbar().MenuOpen()
	projects := m.ctrl.ActiveTab() == view.TabProjects

	for _, b := range []*key.Binding{&m.keys.Projects, &m.keys.About, &m.keys.Contact} {
		b.SetEnabled(!overlay)
	}
	m.keys.NextTab.SetEnabled(!overlay && !menu)
	m.keys.PrevTab.SetEnabled(!overlay && !menu)
	m.keys.Menu.SetEnabled(!overlay && m.collapsed())
	m.keys.Up.SetEnabled(!overlay && (menu || projects))
	m.keys.Down.SetEnabled(!overlay && (menu || projects))
	m.keys.Left.SetEnabled(!overlay && !menu && projects)
	m.keys.Right.SetEnabled(!overlay && !menu && projects)
	m.keys.Open.SetEnabled(!overlay && (menu || projects))
	m.keys.Back.SetEnabled(overlay || menu)
}
