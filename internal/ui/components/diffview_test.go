package components

import (
	"strings"
	"testing"

	"menuentry/internal/diff"
)

func TestDiffView_NoResult(t *testing.T) {
	d := NewDiffView()

	if !strings.Contains(d.View(), "No diff") {
		t.Error("expected placeholder without a result")
	}
}

func TestDiffView_IdenticalResult(t *testing.T) {
	d := NewDiffView()
	d.SetDiff("app.desktop", diff.Strings("same\n", "same\n"))

	if !strings.Contains(d.View(), "No pending changes") {
		t.Error("identical diff should say there are no pending changes")
	}
}

func TestDiffView_ShowsChanges(t *testing.T) {
	d := NewDiffView()
	d.SetDiff("app.desktop", diff.Strings("Name=Old\n", "Name=New\n"))

	view := d.View()
	if !strings.Contains(view, "Name=Old") || !strings.Contains(view, "Name=New") {
		t.Errorf("diff lines missing from view:\n%s", view)
	}
	if !strings.Contains(view, "+1 -1") {
		t.Errorf("expected +1 -1 counter in view:\n%s", view)
	}
}

func TestDiffView_Scroll(t *testing.T) {
	d := NewDiffView()
	d.Height = 6
	var oldText, newText strings.Builder
	for i := 0; i < 30; i++ {
		oldText.WriteString("line\n")
		newText.WriteString("changed\n")
	}
	d.SetDiff("x", diff.Strings(oldText.String(), newText.String()))

	d.ScrollUp() // At the top already
	if d.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0", d.ScrollOffset)
	}

	d.ScrollDown()
	if d.ScrollOffset != 1 {
		t.Errorf("ScrollOffset = %d, want 1", d.ScrollOffset)
	}
}
