package components

import (
	"fmt"
	"strings"

	"menuentry/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Preview displays the raw desktop file text with syntax highlighting
type Preview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	Title      string
	TotalLines int

	Width  int
	Height int

	lineNumStyle lipgloss.Style
	headerStyle  lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewPreview creates a new preview component
func NewPreview() *Preview {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Preview{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")).
			Width(5).
			Align(lipgloss.Right),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (p *Preview) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	contentHeight := height - 5
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
}

// SetContent loads desktop file text into the preview
func (p *Preview) SetContent(title, content string) {
	p.Title = title

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	p.TotalLines = len(lines)
	highlighted := p.highlighter.HighlightLines(lines)

	var b strings.Builder
	for i, line := range highlighted {
		b.WriteString(p.lineNumStyle.Render(fmt.Sprintf("%d ", i+1)))
		b.WriteString(line)
		if i < len(highlighted)-1 {
			b.WriteString("\n")
		}
	}

	p.viewport.SetContent(b.String())
	p.viewport.GotoTop()
}

// Update forwards key and mouse events to the viewport
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the preview
func (p *Preview) View() string {
	header := p.headerStyle.Render(p.Title) +
		ui.MutedStyle.Render(fmt.Sprintf("  %d lines", p.TotalLines))

	return p.borderStyle.Render(header + "\n\n" + p.viewport.View())
}
