package components

import (
	"strings"
	"testing"

	"menuentry/internal/desktop"
)

func TestEditor_SetEntryAndEntryRoundTrip(t *testing.T) {
	editor := NewEditor()
	in := desktop.Entry{
		Name:           "My App",
		Exec:           "myapp --flag",
		Type:           "Application",
		Comment:        "does things",
		Icon:           "myapp",
		Path:           "/opt/myapp",
		Terminal:       true,
		Categories:     "Utility;",
		Keywords:       "a;b;",
		URL:            "https://example.com",
		MimeType:       "text/plain;",
		Hidden:         true,
		EnvVars:        "FOO=1;BAR=2",
		StartupWMClass: "myapp",
		SourcePath:     "/home/u/.local/share/applications/my-app.desktop",
	}

	editor.SetEntry(in, true)
	out := editor.Entry()

	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestEditor_EntryTrimsWhitespace(t *testing.T) {
	editor := NewEditor()
	editor.SetEntry(desktop.Entry{Name: "X"}, true)
	editor.inputs[FieldName].SetValue("  Padded  ")

	if got := editor.Entry().Name; got != "Padded" {
		t.Errorf("Name = %q, want Padded", got)
	}
}

func TestEditor_Clear(t *testing.T) {
	editor := NewEditor()
	editor.SetEntry(desktop.Entry{Name: "X", Terminal: true, SourcePath: "/p"}, false)

	editor.Clear()
	e := editor.Entry()

	if e.Name != "" || e.Terminal || e.SourcePath != "" {
		t.Errorf("Clear left state behind: %+v", e)
	}
	if e.Type != "Application" {
		t.Errorf("Type = %q, want Application", e.Type)
	}
	if !editor.Writable() {
		t.Error("cleared editor should be writable (new entry)")
	}
}

func TestEditor_WritabilityCarried(t *testing.T) {
	editor := NewEditor()

	editor.SetEntry(desktop.Entry{Name: "Sys", SourcePath: "/usr/share/applications/sys.desktop"}, false)
	if editor.Writable() {
		t.Error("system entry should not be writable")
	}

	editor.SetEntry(desktop.Entry{Name: "User", SourcePath: "/home/u/apps/u.desktop"}, true)
	if !editor.Writable() {
		t.Error("user entry should be writable")
	}
}

func TestEditor_CursorNavigation(t *testing.T) {
	editor := NewEditor()

	editor.MoveUp() // Already at the top
	if editor.Cursor != FieldName {
		t.Errorf("cursor = %v, want FieldName", editor.Cursor)
	}

	editor.MoveDown()
	if editor.Cursor != FieldExec {
		t.Errorf("cursor = %v, want FieldExec", editor.Cursor)
	}

	for i := 0; i < 50; i++ { // Should clamp at the last field
		editor.MoveDown()
	}
	if editor.Cursor != FieldURL {
		t.Errorf("cursor = %v, want FieldURL", editor.Cursor)
	}
}

func TestEditor_ToggleBooleanFields(t *testing.T) {
	editor := NewEditor()
	editor.SetEntry(desktop.Entry{Name: "X"}, true)

	editor.Cursor = FieldTerminal
	if !editor.IsBoolField() {
		t.Fatal("FieldTerminal should be a bool field")
	}

	editor.Toggle()
	if !editor.Entry().Terminal {
		t.Error("Terminal should be toggled on")
	}

	editor.Cursor = FieldHidden
	editor.Toggle()
	editor.Toggle()
	if editor.Entry().Hidden {
		t.Error("double toggle should restore Hidden=false")
	}
}

func TestEditor_StartEditOnBoolFieldToggles(t *testing.T) {
	editor := NewEditor()
	editor.SetEntry(desktop.Entry{Name: "X"}, true)
	editor.Cursor = FieldTerminal

	cmd := editor.StartEdit()
	if cmd != nil {
		t.Error("bool fields should toggle, not enter edit mode")
	}
	if editor.Editing {
		t.Error("editor should not be in editing mode")
	}
	if !editor.Entry().Terminal {
		t.Error("StartEdit on a toggle should flip it")
	}
}

func TestEditor_StartStopEdit(t *testing.T) {
	editor := NewEditor()
	editor.SetEntry(desktop.Entry{Name: "X"}, true)
	editor.Cursor = FieldComment

	cmd := editor.StartEdit()
	if cmd == nil {
		t.Error("expected blink command when editing a text field")
	}
	if !editor.Editing {
		t.Error("editor should be in editing mode")
	}

	editor.StopEdit()
	if editor.Editing {
		t.Error("editor should have left editing mode")
	}
}

func TestEditor_ViewMarksReadOnly(t *testing.T) {
	editor := NewEditor()
	editor.Width = 60
	editor.SetEntry(desktop.Entry{Name: "Sys", SourcePath: "/usr/share/applications/s.desktop"}, false)

	if !strings.Contains(editor.View(), "read-only") {
		t.Error("view should mark system entries read-only")
	}
}

func TestEditor_ViewMarksNewEntry(t *testing.T) {
	editor := NewEditor()
	editor.Width = 60
	editor.Clear()

	if !strings.Contains(editor.View(), "[new]") {
		t.Error("view should mark unsaved entries as new")
	}
}
