package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"menuentry/internal/backup"
	"menuentry/internal/config"
	"menuentry/internal/desktop"
	"menuentry/internal/diff"
	"menuentry/internal/templates"
	"menuentry/internal/ui"
	"menuentry/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Screen represents different screens in the app
type Screen int

const (
	ScreenMain      Screen = iota
	ScreenHelp             // Keybinding reference
	ScreenConfirm          // Delete confirmation dialog
	ScreenPreview          // Raw desktop file preview
	ScreenDiff             // Pending changes against disk
	ScreenTemplates        // Template picker for new entries
)

// Panel represents which panel is focused
type Panel int

const (
	PanelList Panel = iota
	PanelEditor
)

// Model is the main application model
type Model struct {
	config    *config.Config
	store     *desktop.Store
	backupMgr *backup.Manager
	templates *templates.Store

	// UI Components
	entryList *components.EntryList
	editor    *components.Editor
	preview   *components.Preview
	diffView  *components.DiffView
	help      help.Model
	helpVP    viewport.Model
	keys      ui.KeyMap
	searchIn  textinput.Model

	// State
	screen       Screen
	focusedPanel Panel
	status       string
	width        int
	height       int

	// Loaded entries; skipped counts files LoadAll could not parse
	results  []desktop.LoadResult
	filtered []desktop.LoadResult
	skipped  int

	// Search state
	searchMode  bool
	searchQuery string

	// Template picker state
	templateList   []templates.Template
	templateCursor int

	// Delete confirmation state
	confirmPath   string
	confirmCursor int
}

// Messages
type loadCompleteMsg struct {
	results []desktop.LoadResult
}

type saveCompleteMsg struct {
	entry desktop.Entry
	path  string
	err   error
}

type deleteCompleteMsg struct {
	path string
	err  error
}

func New() *Model {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
		debugLog("config load failed, using defaults: %v", err)
	}

	si := textinput.New()
	si.Placeholder = "Search entries..."
	si.CharLimit = 128
	si.Width = 40

	m := &Model{
		config:       cfg,
		store:        desktop.NewStore(cfg.UserApplicationsDir, cfg.SystemApplicationsDir),
		backupMgr:    backup.New(cfg.BackupPath),
		templates:    templates.New(cfg.TemplatesPath),
		entryList:    components.NewEntryList(nil),
		editor:       components.NewEditor(),
		preview:      components.NewPreview(),
		diffView:     components.NewDiffView(),
		help:         help.New(),
		keys:         ui.DefaultKeyMap(),
		searchIn:     si,
		screen:       ScreenMain,
		focusedPanel: PanelList,
		status:       "Loading entries...",
		width:        100,
		height:       30,
	}
	m.editor.Clear()
	m.editor.Focused = false
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.loadEntries
}

// loadEntries re-reads every desktop file from disk. Unparsable files
// stay in the results with their error so the status bar can count
// them; the list itself only shows the loadable ones.
func (m *Model) loadEntries() tea.Msg {
	results := m.store.LoadAll()
	debugLog("loaded %d desktop files from %s and %s",
		len(results), m.store.UserDir, m.store.SystemDir)
	return loadCompleteMsg{results: results}
}

func (m *Model) saveEntry(entry desktop.Entry) tea.Cmd {
	return func() tea.Msg {
		// Snapshot the user dir before overwriting an existing entry
		if entry.SourcePath != "" && m.store.IsUserPath(entry.SourcePath) {
			if _, err := m.backupMgr.Snapshot(m.store.UserDir, "before saving "+entry.Name); err != nil {
				debugLog("backup snapshot failed: %v", err)
			}
		}

		path, err := m.store.Save(&entry, "")
		return saveCompleteMsg{entry: entry, path: path, err: err}
	}
}

func (m *Model) deleteEntry(path string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.backupMgr.Snapshot(m.store.UserDir, "before deleting "+filepath.Base(path)); err != nil {
			debugLog("backup snapshot failed: %v", err)
		}
		return deleteCompleteMsg{path: path, err: m.store.Delete(path)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		if m.screen == ScreenHelp {
			m.helpVP.Width = m.width - 4
			m.helpVP.Height = m.height - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.screen == ScreenPreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}

	case loadCompleteMsg:
		m.results = msg.results
		m.skipped = 0
		for _, r := range msg.results {
			if r.Err != nil {
				m.skipped++
			}
		}
		m.applyFilter()
		m.status = fmt.Sprintf("Loaded %d entries", len(m.filtered))
		if m.skipped > 0 {
			m.status += fmt.Sprintf(" (%d skipped)", m.skipped)
		}
		return m, nil

	case saveCompleteMsg:
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, fs.ErrPermission):
				m.status = "Error: permission denied - only user entries can be modified"
			case errors.Is(msg.err, desktop.ErrNameRequired):
				m.status = "Error: name is required"
			default:
				m.status = fmt.Sprintf("Error saving: %v", msg.err)
			}
			return m, nil
		}
		m.editor.SetEntry(msg.entry, true)
		m.editor.Focused = m.focusedPanel == PanelEditor
		m.status = fmt.Sprintf("✓ Saved to %s", msg.path)
		return m, m.loadEntries

	case deleteCompleteMsg:
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, desktop.ErrNotWritable):
				m.status = "Error: system entries cannot be deleted"
			case errors.Is(msg.err, fs.ErrNotExist):
				m.status = "Error: file not found - was it already removed?"
			default:
				m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			}
			return m, nil
		}
		m.editor.Clear()
		m.editor.Focused = m.focusedPanel == PanelEditor
		m.status = fmt.Sprintf("✓ Deleted %s", filepath.Base(msg.path))
		return m, m.loadEntries
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenHelp:
		if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
			m.screen = ScreenMain
			return m, nil
		}
		var cmd tea.Cmd
		m.helpVP, cmd = m.helpVP.Update(msg)
		return m, cmd
	case ScreenConfirm:
		return m.handleConfirmKeys(msg)
	case ScreenPreview:
		return m.handlePreviewKeys(msg)
	case ScreenDiff:
		return m.handleDiffKeys(msg)
	case ScreenTemplates:
		return m.handleTemplateKeys(msg)
	}

	return m.handleMainKeys(msg)
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		return m.handleSearchKeys(msg)
	}

	// While a field is being edited every key belongs to the input,
	// except enter/esc which finish it
	if m.focusedPanel == PanelEditor && m.editor.Editing {
		switch msg.String() {
		case "enter", "esc":
			m.editor.StopEdit()
			return m, nil
		default:
			return m, m.editor.Update(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.screen = ScreenHelp
		m.helpVP = viewport.New(m.width-4, m.height-4)
		m.helpVP.SetContent(m.renderHelp())
		return m, nil

	case key.Matches(msg, m.keys.Tab, m.keys.ShiftTab):
		m.togglePanel()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.handleNavigation(true)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.handleNavigation(false)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		if m.focusedPanel == PanelList {
			m.entryList.PageUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		if m.focusedPanel == PanelList {
			m.entryList.PageDown()
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		if m.focusedPanel == PanelList {
			m.entryList.GoToFirst()
		}
		return m, nil

	case key.Matches(msg, m.keys.End):
		if m.focusedPanel == PanelList {
			m.entryList.GoToLast()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.handleEnter()

	case key.Matches(msg, m.keys.Space):
		if m.focusedPanel == PanelEditor && m.editor.IsBoolField() {
			m.editor.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.handleNew()

	case key.Matches(msg, m.keys.Save):
		return m.handleSave()

	case key.Matches(msg, m.keys.Delete):
		return m.handleDelete()

	case key.Matches(msg, m.keys.Refresh):
		m.status = "Refreshing..."
		return m, m.loadEntries

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchIn.SetValue(m.searchQuery)
		m.searchIn.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Preview):
		return m.handlePreview()

	case key.Matches(msg, m.keys.Changes):
		return m.handleChanges()

	case key.Matches(msg, m.keys.Escape):
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
			m.status = fmt.Sprintf("Showing all %d entries", len(m.filtered))
		}
		return m, nil
	}

	return m, nil
}

// handleNavigation moves the cursor in the focused panel
func (m *Model) handleNavigation(up bool) {
	if m.focusedPanel == PanelList {
		if up {
			m.entryList.MoveUp()
		} else {
			m.entryList.MoveDown()
		}
		return
	}
	if up {
		m.editor.MoveUp()
	} else {
		m.editor.MoveDown()
	}
}

// handleEnter loads the selected entry into the editor, or starts
// editing the current field when the editor is focused
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.focusedPanel == PanelEditor {
		return m, m.editor.StartEdit()
	}

	item := m.entryList.Current()
	if item == nil {
		m.status = "No entry selected"
		return m, nil
	}
	if item.Err != nil {
		m.status = fmt.Sprintf("Cannot edit %s: %v", filepath.Base(item.Path), item.Err)
		return m, nil
	}

	m.editor.SetEntry(item.Entry, item.Writable)
	m.togglePanel()
	if item.Writable {
		m.status = fmt.Sprintf("Editing %s", item.Entry.Name)
	} else {
		m.status = fmt.Sprintf("Viewing %s (system entry, read-only)", item.Entry.Name)
	}
	return m, nil
}

func (m *Model) handleNew() (tea.Model, tea.Cmd) {
	tpls, err := m.templates.Load()
	if err != nil {
		m.status = fmt.Sprintf("Template file error: %v (built-ins still available)", err)
	}
	m.templateList = tpls
	m.templateCursor = 0
	m.screen = ScreenTemplates
	return m, nil
}

func (m *Model) handleSave() (tea.Model, tea.Cmd) {
	entry := m.editor.Entry()

	if entry.Name == "" {
		m.status = "Error: name is required"
		return m, nil
	}
	if entry.SourcePath != "" && !m.editor.Writable() {
		m.status = "Error: system entries are read-only"
		return m, nil
	}

	m.status = "Saving..."
	return m, m.saveEntry(entry)
}

func (m *Model) handleDelete() (tea.Model, tea.Cmd) {
	path := m.editor.SourcePath()
	if path == "" {
		m.status = "No saved entry selected"
		return m, nil
	}
	if !m.editor.Writable() {
		m.status = "Error: system entries cannot be deleted"
		return m, nil
	}

	m.confirmPath = path
	m.confirmCursor = 1 // Default to Cancel
	m.screen = ScreenConfirm
	return m, nil
}

func (m *Model) handlePreview() (tea.Model, tea.Cmd) {
	entry := m.editor.Entry()
	if entry.Name == "" && entry.SourcePath == "" {
		m.status = "Nothing to preview"
		return m, nil
	}

	title := entry.Filename()
	if entry.SourcePath != "" {
		title = filepath.Base(entry.SourcePath)
	}

	m.preview.SetSize(m.width-4, m.height-4)
	m.preview.SetContent(title, entry.Serialize())
	m.screen = ScreenPreview
	m.status = "Preview - j/k scroll, q to close"
	return m, nil
}

func (m *Model) handleChanges() (tea.Model, tea.Cmd) {
	entry := m.editor.Entry()
	if entry.Name == "" && entry.SourcePath == "" {
		m.status = "Nothing to compare"
		return m, nil
	}

	onDisk := ""
	title := entry.Filename() + " (new)"
	if entry.SourcePath != "" {
		data, err := os.ReadFile(entry.SourcePath)
		if err != nil {
			m.status = fmt.Sprintf("Cannot read %s: %v", entry.SourcePath, err)
			return m, nil
		}
		onDisk = string(data)
		title = filepath.Base(entry.SourcePath)
	}

	m.diffView.Width = m.width - 4
	m.diffView.Height = m.height - 6
	m.diffView.SetDiff(title, diff.Strings(onDisk, entry.Serialize()))
	m.screen = ScreenDiff
	m.status = "Pending changes - j/k scroll, q to close"
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "right", "l", "tab":
		m.confirmCursor = 1 - m.confirmCursor
		return m, nil

	case "y":
		m.screen = ScreenMain
		return m, m.deleteEntry(m.confirmPath)

	case "n", "esc", "q":
		m.screen = ScreenMain
		m.status = "Delete cancelled"
		return m, nil

	case "enter":
		m.screen = ScreenMain
		if m.confirmCursor == 0 {
			return m, m.deleteEntry(m.confirmPath)
		}
		m.status = "Delete cancelled"
		return m, nil
	}

	return m, nil
}

func (m *Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Preview):
		m.screen = ScreenMain
		m.status = "Ready"
		return m, nil

	default:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleDiffKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Changes):
		m.screen = ScreenMain
		m.status = "Ready"
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.diffView.ScrollUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.diffView.ScrollDown()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleTemplateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Quit):
		m.screen = ScreenMain
		m.status = "Ready"
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.templateCursor > 0 {
			m.templateCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.templateCursor < len(m.templateList)-1 {
			m.templateCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if len(m.templateList) == 0 {
			m.screen = ScreenMain
			return m, nil
		}
		tpl := m.templateList[m.templateCursor]
		m.editor.SetEntry(tpl.Entry(), true)
		m.focusedPanel = PanelEditor
		m.entryList.Focused = false
		m.editor.Focused = true
		m.screen = ScreenMain
		m.status = fmt.Sprintf("New %s entry - fill in the fields and press s to save", tpl.Name)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
		m.searchIn.Blur()
		m.applyFilter()
		m.status = "Search cancelled"
		return m, nil

	case tea.KeyEnter:
		m.searchMode = false
		m.searchIn.Blur()
		if m.searchQuery == "" {
			m.status = fmt.Sprintf("Showing all %d entries", len(m.filtered))
		} else {
			m.status = fmt.Sprintf("Showing %d matching entries", len(m.filtered))
		}
		return m, nil

	case tea.KeyUp:
		m.entryList.MoveUp()
		return m, nil

	case tea.KeyDown:
		m.entryList.MoveDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.searchIn, cmd = m.searchIn.Update(msg)
		m.searchQuery = m.searchIn.Value()
		m.applyFilter()
		return m, cmd
	}
}

// applyFilter rebuilds the visible list from the loaded results and
// the search query. Unparsable files never reach the list.
func (m *Model) applyFilter() {
	query := strings.ToLower(m.searchQuery)

	var filtered []desktop.LoadResult
	for _, r := range m.results {
		if r.Err != nil {
			continue
		}
		if query != "" {
			name := strings.ToLower(r.Entry.Name)
			file := strings.ToLower(filepath.Base(r.Path))
			if !strings.Contains(name, query) && !strings.Contains(file, query) {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	m.filtered = filtered
	m.entryList.SetItems(filtered)
}

func (m *Model) togglePanel() {
	if m.focusedPanel == PanelList {
		m.focusedPanel = PanelEditor
	} else {
		m.focusedPanel = PanelList
	}
	m.entryList.Focused = m.focusedPanel == PanelList
	m.editor.Focused = m.focusedPanel == PanelEditor
}

func (m *Model) updatePanelSizes() {
	listWidth := m.width / 3
	if listWidth < 30 {
		listWidth = 30
	}
	if listWidth > 50 {
		listWidth = 50
	}

	panelHeight := m.height - 7
	if panelHeight < 10 {
		panelHeight = 10
	}

	m.entryList.Width = listWidth
	m.entryList.Height = panelHeight
	m.editor.Width = m.width - listWidth - 6
	m.editor.Height = panelHeight
}

func (m *Model) View() string {
	switch m.screen {
	case ScreenHelp:
		return ui.AppStyle.Render(m.renderHeader() + "\n" + m.helpVP.View())
	case ScreenConfirm:
		return m.renderConfirm()
	case ScreenPreview:
		return ui.AppStyle.Render(m.renderHeader() + "\n" + m.preview.View() + "\n" + m.renderStatusBar())
	case ScreenDiff:
		return ui.AppStyle.Render(m.renderHeader() + "\n" + m.diffView.View() + "\n" + m.renderStatusBar())
	case ScreenTemplates:
		return m.renderTemplates()
	default:
		return m.renderMain()
	}
}

func (m *Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.searchMode {
		b.WriteString(ui.MutedStyle.Render("Search: "))
		b.WriteString(m.searchIn.View())
		b.WriteString("\n")
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.entryList.View(),
		"  ",
		m.editor.View(),
	)
	b.WriteString(panels)

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(ui.HelpBarStyle.Render(m.help.View(m.keys)))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render("Menu Entry Manager")
	ver := ui.VersionStyle.Render("v" + version)
	path := ui.MutedStyle.Render("  " + m.store.UserDir)
	return ui.HeaderStyle.Render(title + "  " + ver + path)
}

func (m *Model) renderStatusBar() string {
	userCount := m.entryList.UserCount()
	systemCount := len(m.entryList.Items) - userCount

	var stats []string
	stats = append(stats, fmt.Sprintf("Entries: %d", len(m.entryList.Items)))
	stats = append(stats, fmt.Sprintf("User: %d", userCount))
	stats = append(stats, fmt.Sprintf("System: %d", systemCount))
	if m.skipped > 0 {
		stats = append(stats, ui.WarningNotifyStyle.Render(fmt.Sprintf("Skipped: %d", m.skipped)))
	}

	styledStatus := ui.StatusTextStyle.Render(m.status)
	if strings.HasPrefix(m.status, "✓") {
		styledStatus = ui.RenderNotification("success", strings.TrimPrefix(m.status, "✓ "))
	} else if strings.HasPrefix(m.status, "Error") {
		styledStatus = ui.RenderNotification("error", m.status)
	} else if strings.Contains(m.status, "cancelled") {
		styledStatus = ui.RenderNotification("warning", m.status)
	}

	return ui.StatusBarStyle.Render(styledStatus + "  •  " + strings.Join(stats, "  •  "))
}

func (m *Model) renderConfirm() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Error).
		Render("Delete entry?")

	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString("This removes the file from disk:\n")
	b.WriteString(ui.SelectedItemStyle.Render("  " + m.confirmPath))
	b.WriteString("\n\n")
	b.WriteString("A backup snapshot is taken first.\n\n")

	buttons := []string{"Delete", "Cancel"}
	for i, label := range buttons {
		style := lipgloss.NewStyle().Foreground(ui.Muted).Padding(0, 2)
		if i == m.confirmCursor {
			style = lipgloss.NewStyle().Foreground(ui.Foreground).Background(ui.Error).Padding(0, 2).Bold(true)
			if i == 1 {
				style = style.Background(ui.Selected)
			}
		}
		b.WriteString(style.Render(label))
		b.WriteString("  ")
	}

	b.WriteString("\n\n")
	b.WriteString(ui.HelpBarStyle.Render("←/→ choose • ENTER confirm • y delete • ESC cancel"))

	box := ui.DialogStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderTemplates() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Primary).
		Render("New Entry")

	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString("Choose a template:\n\n")

	for i, tpl := range m.templateList {
		line := tpl.Name
		if tpl.Description != "" {
			line += ui.MutedStyle.Render("  " + tpl.Description)
		}
		if i == m.templateCursor {
			b.WriteString(ui.SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(ui.ItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.HelpBarStyle.Render("↑/↓ choose • ENTER create • ESC cancel"))

	box := ui.DialogStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("Keyboard Reference"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		items [][2]string
	}{
		{"Navigation", [][2]string{
			{"↑/k ↓/j", "move cursor"},
			{"PgUp/PgDn", "page through the list"},
			{"Home/End g/G", "jump to first/last"},
			{"tab", "switch between list and editor"},
		}},
		{"Entries", [][2]string{
			{"enter", "edit selected entry / edit field"},
			{"space", "toggle Terminal or Hidden"},
			{"n", "new entry from a template"},
			{"s", "save the edited entry"},
			{"d", "delete the entry (user entries only)"},
			{"r", "reload entries from disk"},
		}},
		{"Inspect", [][2]string{
			{"/", "search by name or filename"},
			{"v", "preview the raw desktop file"},
			{"c", "diff unsaved changes against disk"},
		}},
		{"General", [][2]string{
			{"?", "toggle this help"},
			{"esc", "back / clear search"},
			{"q", "quit"},
		}},
	}

	for _, section := range sections {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(ui.Warning).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString("  ")
			b.WriteString(ui.RenderHelpItem(fmt.Sprintf("%-14s", item[0]), item[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(ui.MutedStyle.Render("User entries live in " + m.store.UserDir + "\n"))
	b.WriteString(ui.MutedStyle.Render("System entries in " + m.store.SystemDir + " are read-only"))

	return b.String()
}

func main() {
	// Check for flags
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("menuentry %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("menuentry - A TUI for managing desktop launcher entries")
			fmt.Println()
			fmt.Println("Usage: menuentry [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Enable debug mode (logs to stderr)")
			fmt.Println()
			fmt.Println("Run without arguments to start the TUI.")
			return
		case "-d", "--debug", "debug":
			debugMode = true
			fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
		}
	}

	p := tea.NewProgram(New(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
