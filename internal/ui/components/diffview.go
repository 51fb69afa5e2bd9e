package components

import (
	"fmt"
	"strings"

	"menuentry/internal/diff"
	"menuentry/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// DiffView displays the pending changes of the editor against the
// on-disk version of an entry
type DiffView struct {
	Width  int
	Height int

	Title  string
	Result *diff.Result

	ScrollOffset int

	addStyle    lipgloss.Style
	deleteStyle lipgloss.Style
	equalStyle  lipgloss.Style
	headerStyle lipgloss.Style
}

// NewDiffView creates a new DiffView
func NewDiffView() *DiffView {
	return &DiffView{
		Width:  80,
		Height: 20,
		addStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a6e3a1")),
		deleteStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8")),
		equalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
	}
}

// SetDiff sets the diff result to display
func (d *DiffView) SetDiff(title string, result *diff.Result) {
	d.Title = title
	d.Result = result
	d.ScrollOffset = 0
}

// ScrollUp scrolls the view up
func (d *DiffView) ScrollUp() {
	if d.ScrollOffset > 0 {
		d.ScrollOffset--
	}
}

// ScrollDown scrolls the view down
func (d *DiffView) ScrollDown() {
	if d.Result != nil && d.ScrollOffset < max(0, len(d.Result.Lines)-d.visibleLines()) {
		d.ScrollOffset++
	}
}

func (d *DiffView) visibleLines() int {
	v := d.Height - 4
	if v < 1 {
		v = 1
	}
	return v
}

// View renders the diff view
func (d *DiffView) View() string {
	if d.Result == nil {
		return "No diff to display"
	}

	var b strings.Builder
	b.WriteString(d.headerStyle.Render(d.Title))
	b.WriteString(ui.MutedStyle.Render(fmt.Sprintf("  +%d -%d", d.Result.LinesAdded, d.Result.LinesRemoved)))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, d.Width-2))))
	b.WriteString("\n")

	if d.Result.Identical {
		b.WriteString(ui.MutedStyle.Render("No pending changes"))
		return b.String()
	}

	start := d.ScrollOffset
	end := min(start+d.visibleLines(), len(d.Result.Lines))

	for i := start; i < end; i++ {
		line := d.Result.Lines[i]
		switch line.Type {
		case diff.Insert:
			b.WriteString(d.addStyle.Render("+ " + line.Content))
		case diff.Delete:
			b.WriteString(d.deleteStyle.Render("- " + line.Content))
		default:
			b.WriteString(d.equalStyle.Render("  " + line.Content))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(d.Result.Lines) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	return b.String()
}
