package view

// Origin says which navbar control triggered a tab selection.
type Origin int

const (
	// FromBar is the always-visible desktop tab bar.
	FromBar Origin = iota
	// FromMenu is the collapsible menu shown below the width threshold.
	FromMenu
)

// Navbar owns the collapsible menu state. Tab selection is forwarded to the
// controller that created it.
type Navbar struct {
	menuOpen  bool
	selectTab func(Tab) Change
}

// MenuOpen reports whether the collapsible menu is open.
func (n *Navbar) MenuOpen() bool { return n.menuOpen }

// ToggleMenu flips the menu open state.
func (n *Navbar) ToggleMenu() Change {
	n.menuOpen = !n.menuOpen
	return Change{Kind: ChangeMenu, MenuOpen: n.menuOpen}
}

// Select activates tab. A selection from the menu also closes the menu, in
// the same change.
func (n *Navbar) Select(tab Tab, from Origin) Change {
	ch := n.selectTab(tab)
	if from == FromMenu {
		ch.MenuClosed = n.menuOpen
		n.menuOpen = false
	}
	ch.MenuOpen = n.menuOpen
	return ch
}

// Items returns the tab controls in navigation order, marking active.
func (n *Navbar) Items(active Tab) []NavItem {
	items := make([]NavItem, len(Tabs))
	for i, t := range Tabs {
		items[i] = NavItem{Tab: t, Label: t.Label(), Active: t == active}
	}
	return items
}
