package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	// Test all key bindings are defined
	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Home", km.Home},
		{"End", km.End},
		{"Tab", km.Tab},
		{"ShiftTab", km.ShiftTab},
		{"Space", km.Space},
		{"Enter", km.Enter},
		{"New", km.New},
		{"Save", km.Save},
		{"Delete", km.Delete},
		{"Refresh", km.Refresh},
		{"Search", km.Search},
		{"Preview", km.Preview},
		{"Changes", km.Changes},
		{"Help", km.Help},
		{"Quit", km.Quit},
		{"Escape", km.Escape},
	}

	for _, b := range bindings {
		if len(b.binding.Keys()) == 0 {
			t.Errorf("%s binding should have keys", b.name)
		}
		if b.binding.Help().Key == "" {
			t.Errorf("%s binding should have help key", b.name)
		}
		if b.binding.Help().Desc == "" {
			t.Errorf("%s binding should have help description", b.name)
		}
	}
}

func TestFullHelp_CoversEntryOperations(t *testing.T) {
	km := DefaultKeyMap()

	found := map[string]bool{}
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if len(b.Keys()) > 0 {
				found[b.Keys()[0]] = true
			}
		}
	}

	for _, k := range []string{"n", "s", "d", "/"} {
		if !found[k] {
			t.Errorf("full help should include %q", k)
		}
	}
}
