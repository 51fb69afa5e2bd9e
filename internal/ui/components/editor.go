package components

import (
	"strings"

	"menuentry/internal/desktop"
	"menuentry/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies one editable entry field
type Field int

const (
	FieldName Field = iota
	FieldExec
	FieldComment
	FieldIcon
	FieldWorkingDir
	FieldCategories
	FieldKeywords
	FieldTerminal
	FieldHidden
	FieldEnvVars
	FieldMimeType
	FieldWMClass
	FieldURL
	fieldCount
)

// fieldSpec describes a field's label and input placeholder
type fieldSpec struct {
	label       string
	placeholder string
	boolean     bool
}

var fieldSpecs = [fieldCount]fieldSpec{
	FieldName:       {label: "Name", placeholder: "Application name"},
	FieldExec:       {label: "Exec", placeholder: "Command to execute"},
	FieldComment:    {label: "Comment", placeholder: "Description"},
	FieldIcon:       {label: "Icon", placeholder: "Icon name or path"},
	FieldWorkingDir: {label: "Working Dir", placeholder: "Working directory"},
	FieldCategories: {label: "Categories", placeholder: "Game;Utility;"},
	FieldKeywords:   {label: "Keywords", placeholder: "word1;word2;"},
	FieldTerminal:   {label: "Run in Terminal", boolean: true},
	FieldHidden:     {label: "Hidden", boolean: true},
	FieldEnvVars:    {label: "Env Variables", placeholder: "VAR1=value1;VAR2=value2"},
	FieldMimeType:   {label: "MIME Types", placeholder: "text/plain;"},
	FieldWMClass:    {label: "StartupWMClass", placeholder: ""},
	FieldURL:        {label: "URL", placeholder: "For Link type entries"},
}

// Editor is the right-hand panel editing a single desktop entry. It
// owns the input widgets; Entry() marshals their values into a plain
// desktop.Entry, so nothing widget-shaped leaks into the store.
type Editor struct {
	inputs   [fieldCount]textinput.Model
	terminal bool
	hidden   bool

	Cursor  Field
	Editing bool
	Width   int
	Height  int
	Focused bool

	// Carried through from the loaded entry; not edited directly
	entryType  string
	sourcePath string
	writable   bool
}

// NewEditor creates an editor with empty fields
func NewEditor() *Editor {
	e := &Editor{
		Width:    50,
		Height:   20,
		writable: true,
	}
	for f := Field(0); f < fieldCount; f++ {
		if fieldSpecs[f].boolean {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = fieldSpecs[f].placeholder
		ti.CharLimit = 512
		ti.Width = 40
		e.inputs[f] = ti
	}
	return e
}

// SetEntry loads an entry's values into the fields. The writable flag
// decides whether save/delete are offered for this entry.
func (e *Editor) SetEntry(entry desktop.Entry, writable bool) {
	e.inputs[FieldName].SetValue(entry.Name)
	e.inputs[FieldExec].SetValue(entry.Exec)
	e.inputs[FieldComment].SetValue(entry.Comment)
	e.inputs[FieldIcon].SetValue(entry.Icon)
	e.inputs[FieldWorkingDir].SetValue(entry.Path)
	e.inputs[FieldCategories].SetValue(entry.Categories)
	e.inputs[FieldKeywords].SetValue(entry.Keywords)
	e.inputs[FieldEnvVars].SetValue(entry.EnvVars)
	e.inputs[FieldMimeType].SetValue(entry.MimeType)
	e.inputs[FieldWMClass].SetValue(entry.StartupWMClass)
	e.inputs[FieldURL].SetValue(entry.URL)
	e.terminal = entry.Terminal
	e.hidden = entry.Hidden

	e.entryType = entry.Type
	e.sourcePath = entry.SourcePath
	e.writable = writable
	e.Cursor = FieldName
	e.StopEdit()
}

// Entry builds a desktop entry from the current field values
func (e *Editor) Entry() desktop.Entry {
	return desktop.Entry{
		Name:           strings.TrimSpace(e.inputs[FieldName].Value()),
		Exec:           strings.TrimSpace(e.inputs[FieldExec].Value()),
		Type:           e.entryType,
		Comment:        strings.TrimSpace(e.inputs[FieldComment].Value()),
		Icon:           strings.TrimSpace(e.inputs[FieldIcon].Value()),
		Path:           strings.TrimSpace(e.inputs[FieldWorkingDir].Value()),
		Terminal:       e.terminal,
		Categories:     strings.TrimSpace(e.inputs[FieldCategories].Value()),
		Keywords:       strings.TrimSpace(e.inputs[FieldKeywords].Value()),
		URL:            strings.TrimSpace(e.inputs[FieldURL].Value()),
		MimeType:       strings.TrimSpace(e.inputs[FieldMimeType].Value()),
		Hidden:         e.hidden,
		EnvVars:        strings.TrimSpace(e.inputs[FieldEnvVars].Value()),
		StartupWMClass: strings.TrimSpace(e.inputs[FieldWMClass].Value()),
		SourcePath:     e.sourcePath,
	}
}

// Clear resets all fields for a new entry
func (e *Editor) Clear() {
	e.SetEntry(desktop.Entry{Type: "Application"}, true)
}

// SourcePath returns the backing file of the loaded entry, if any
func (e *Editor) SourcePath() string {
	return e.sourcePath
}

// Writable reports whether the loaded entry may be saved or deleted
func (e *Editor) Writable() bool {
	return e.writable
}

// MoveUp moves the field cursor up
func (e *Editor) MoveUp() {
	if e.Cursor > 0 {
		e.Cursor--
	}
}

// MoveDown moves the field cursor down
func (e *Editor) MoveDown() {
	if e.Cursor < fieldCount-1 {
		e.Cursor++
	}
}

// IsBoolField reports whether the cursor is on a toggle field
func (e *Editor) IsBoolField() bool {
	return fieldSpecs[e.Cursor].boolean
}

// Toggle flips the boolean field under the cursor
func (e *Editor) Toggle() {
	switch e.Cursor {
	case FieldTerminal:
		e.terminal = !e.terminal
	case FieldHidden:
		e.hidden = !e.hidden
	}
}

// StartEdit begins editing the text field under the cursor
func (e *Editor) StartEdit() tea.Cmd {
	if e.IsBoolField() {
		e.Toggle()
		return nil
	}
	e.Editing = true
	e.inputs[e.Cursor].Focus()
	return textinput.Blink
}

// StopEdit leaves field editing mode
func (e *Editor) StopEdit() {
	e.Editing = false
	for f := Field(0); f < fieldCount; f++ {
		if !fieldSpecs[f].boolean {
			e.inputs[f].Blur()
		}
	}
}

// Update forwards a message to the field being edited
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if !e.Editing || e.IsBoolField() {
		return nil
	}
	var cmd tea.Cmd
	e.inputs[e.Cursor], cmd = e.inputs[e.Cursor].Update(msg)
	return cmd
}

// Value returns the current text of a field (empty for toggles)
func (e *Editor) Value(f Field) string {
	if fieldSpecs[f].boolean {
		return ""
	}
	return e.inputs[f].Value()
}

// View renders the editor panel
func (e *Editor) View() string {
	var b strings.Builder

	title := "Editor"
	if e.sourcePath != "" {
		if e.writable {
			title = "Editor " + ui.UserEntryStyle.Render("[user]")
		} else {
			title = "Editor " + ui.SystemEntryStyle.Render("[system, read-only]")
		}
	} else {
		title = "Editor " + ui.MutedStyle.Render("[new]")
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, e.Width-2))))
	b.WriteString("\n")

	for f := Field(0); f < fieldCount; f++ {
		b.WriteString(e.renderField(f))
		if f < fieldCount-1 {
			b.WriteString("\n")
		}
	}

	return e.wrapInPanel(b.String())
}

// renderField renders a single labeled field line
func (e *Editor) renderField(f Field) string {
	spec := fieldSpecs[f]
	label := ui.FieldLabelStyle.Render(padLabel(spec.label))

	var value string
	if spec.boolean {
		on := e.terminal
		if f == FieldHidden {
			on = e.hidden
		}
		value = ui.RenderToggle(on)
	} else if e.Editing && e.Cursor == f {
		value = e.inputs[f].View()
	} else {
		text := e.inputs[f].Value()
		if text == "" {
			value = ui.MutedStyle.Render(spec.placeholder)
		} else {
			value = ui.FieldValueStyle.Render(text)
		}
	}

	cursor := "  "
	if e.Focused && e.Cursor == f {
		cursor = ui.CursorStyle.Render("> ")
	}

	return cursor + label + " " + value
}

func padLabel(label string) string {
	const width = 16
	if len(label) >= width {
		return label + ":"
	}
	return label + ":" + strings.Repeat(" ", width-len(label))
}

// wrapInPanel wraps content in a panel border
func (e *Editor) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if e.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(e.Width).Height(e.Height).Render(content)
}
