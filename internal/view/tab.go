package view

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned by ParseTab for a name outside the tab set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is one of the three top-level views. The zero value is TabProjects.
type Tab int

const (
	TabProjects Tab = iota
	TabAbout
	TabContact
)

// Tabs lists every tab in navigation order.
var Tabs = []Tab{TabProjects, TabAbout, TabContact}

// String returns the tab's stable identifier.
func (t Tab) String() string {
	switch t {
	case TabProjects:
		return "projects"
	case TabAbout:
		return "about"
	case TabContact:
		return "contact"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Label returns the tab's display label.
func (t Tab) Label() string {
	switch t {
	case TabProjects:
		return "Projects"
	case TabAbout:
		return "About"
	case TabContact:
		return "Contact"
	default:
		return t.String()
	}
}

// ParseTab maps an identifier produced by String back to its Tab.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if t.String() == s {
			return t, nil
		}
	}
	return TabProjects, fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tab) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tab) UnmarshalText(b []byte) error {
	v, err := ParseTab(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab { return Tabs[(int(t)+1)%len(Tabs)] }

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab { return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)] }
