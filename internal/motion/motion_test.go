package motion

import (
	"strings"
	"testing"
	"time"

	"github.com/alexrivera/archfolio/internal/view"
)

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name string
		ch   view.Change
		want Cues
	}{
		{"tab", view.Change{Kind: view.ChangeTab}, Cues{Panel: true}},
		{"open", view.Change{Kind: view.ChangeOverlayOpen}, Cues{Overlay: true}},
		{"close", view.Change{Kind: view.ChangeOverlayClose}, Cues{}},
		{"menu opened", view.Change{Kind: view.ChangeMenu, MenuOpen: true}, Cues{Menu: true}},
		{"menu closed", view.Change{Kind: view.ChangeMenu, MenuOpen: false}, Cues{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CuesFor(tt.ch); got != tt.want {
				t.Errorf("CuesFor(%s) = %+v, want %+v", tt.ch.Kind, got, tt.want)
			}
		})
	}
}

func TestDescriptorStyle(t *testing.T) {
	got := PanelEnter.Style()
	for _, want := range []string{
		"--motion-duration:400ms;",
		"--motion-x:0px;",
		"--motion-y:20px;",
		"--motion-scale:1;",
		"--motion-opacity:0;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("style %q missing %q", got, want)
		}
	}

	if s := LightboxBody.Style(); !strings.Contains(s, "--motion-scale:0.9;") {
		t.Errorf("lightbox body style: %q", s)
	}
	if s := PanelExit.Style(); !strings.Contains(s, "--motion-y:-20px;") {
		t.Errorf("panel exit style: %q", s)
	}
}

func TestStagger(t *testing.T) {
	if got := Stagger(3, 60*time.Millisecond); got != "animation-delay:180ms;" {
		t.Errorf("Stagger = %q", got)
	}
}

func TestVarsPrefix(t *testing.T) {
	got := PanelExit.Vars("exit")
	if !strings.HasPrefix(got, "--exit-duration:400ms;") || !strings.Contains(got, "--exit-y:-20px;") {
		t.Errorf("Vars(exit) = %q", got)
	}
}
