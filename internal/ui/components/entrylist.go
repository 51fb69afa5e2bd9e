package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"menuentry/internal/desktop"
	"menuentry/internal/ui"
)

// EntryList is a list component for desktop entries
type EntryList struct {
	Items   []desktop.LoadResult
	Cursor  int
	Width   int
	Height  int
	Focused bool
	Title   string
}

// NewEntryList creates a new entry list
func NewEntryList(items []desktop.LoadResult) *EntryList {
	return &EntryList{
		Items:   items,
		Cursor:  0,
		Width:   40,
		Height:  15,
		Focused: true,
		Title:   "Desktop Entries",
	}
}

// SetItems updates the listed entries
func (l *EntryList) SetItems(items []desktop.LoadResult) {
	l.Items = items
	if l.Cursor >= len(items) {
		l.Cursor = max(0, len(items)-1)
	}
}

// MoveUp moves cursor up
func (l *EntryList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *EntryList) MoveDown() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *EntryList) PageUp() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *EntryList) PageDown() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor += pageSize
	if l.Cursor >= len(l.Items) {
		l.Cursor = max(0, len(l.Items)-1)
	}
}

// GoToFirst moves cursor to the first item
func (l *EntryList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *EntryList) GoToLast() {
	if len(l.Items) > 0 {
		l.Cursor = len(l.Items) - 1
	}
}

// Current returns the item under the cursor
func (l *EntryList) Current() *desktop.LoadResult {
	if len(l.Items) > 0 && l.Cursor < len(l.Items) {
		return &l.Items[l.Cursor]
	}
	return nil
}

// UserCount returns how many listed entries are user-writable
func (l *EntryList) UserCount() int {
	count := 0
	for _, item := range l.Items {
		if item.Writable {
			count++
		}
	}
	return count
}

// View renders the entry list
func (l *EntryList) View() string {
	var b strings.Builder

	title := l.Title
	if len(l.Items) > 0 {
		title = fmt.Sprintf("%s (%d)", l.Title, len(l.Items))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, l.Width-2))))
	b.WriteString("\n")

	if len(l.Items) == 0 {
		b.WriteString(ui.ItemStyle.Render("No entries found"))
		return l.wrapInPanel(b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3 // Minus title and divider
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Items))

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(l.Items[i], i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.Items) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	// Position indicator when scrolling
	if len(l.Items) > visibleHeight {
		position := fmt.Sprintf(" %d/%d ", l.Cursor+1, len(l.Items))
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render(strings.Repeat(" ", max(0, (l.Width-len(position)-4)/2)) + position))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single entry line
func (l *EntryList) renderItem(item desktop.LoadResult, isCursor bool) string {
	name := item.Entry.Name
	if name == "" {
		name = filepath.Base(item.Path)
	}

	label := "[system]"
	labelStyle := ui.SystemEntryStyle
	if item.Writable {
		label = "[user]"
		labelStyle = ui.UserEntryStyle
	}

	maxNameLen := l.Width - 14 // Room for the ownership label
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	content := fmt.Sprintf("%s %s", name, labelStyle.Render(label))

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(l.Width - 4).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

// wrapInPanel wraps content in a panel border
func (l *EntryList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
