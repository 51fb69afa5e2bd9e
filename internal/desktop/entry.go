package desktop

import (
	"os"
	"strings"
)

// FileSuffix is the extension of desktop entry files.
const FileSuffix = ".desktop"

// groupHeader is the only section whose keys are read.
const groupHeader = "[Desktop Entry]"

// Entry represents a single application launcher definition.
// It is a plain value: the UI builds a new Entry from its widgets
// rather than mutating a shared one.
type Entry struct {
	Name           string // Name key, defaults to "Unnamed"
	Exec           string // Exec key with any env prefix stripped
	Type           string // Type key, defaults to "Application"
	Comment        string
	Icon           string
	Path           string // working directory
	Terminal       bool
	Categories     string // semicolon-joined list, kept as text
	Keywords       string // semicolon-joined list, kept as text
	URL            string
	MimeType       string
	Hidden         bool
	EnvVars        string // semicolon-joined KEY=VALUE list (X-Env-Vars)
	StartupWMClass string

	SourcePath string // backing file, empty for an unsaved entry
}

// Parse reads desktop file content into an Entry. It never fails:
// malformed input yields an Entry with default fields. Only keys
// inside the [Desktop Entry] section are read; comments, unknown keys
// and other sections are dropped.
func Parse(content string) Entry {
	data := make(map[string]string)
	inScope := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inScope = line == groupHeader
			continue
		}
		if !inScope {
			continue
		}

		if key, value, ok := strings.Cut(line, "="); ok {
			data[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	envVars := data["X-Env-Vars"]
	execCmd := data["Exec"]
	if envVars != "" {
		execCmd = stripEnvPrefix(execCmd)
	}

	e := Entry{
		Name:           data["Name"],
		Exec:           execCmd,
		Type:           data["Type"],
		Comment:        data["Comment"],
		Icon:           data["Icon"],
		Path:           data["Path"],
		Terminal:       strings.EqualFold(data["Terminal"], "true"),
		Categories:     data["Categories"],
		Keywords:       data["Keywords"],
		URL:            data["URL"],
		MimeType:       data["MimeType"],
		Hidden:         strings.EqualFold(data["Hidden"], "true"),
		EnvVars:        envVars,
		StartupWMClass: data["StartupWMClass"],
	}
	if e.Name == "" {
		e.Name = "Unnamed"
	}
	if e.Type == "" {
		e.Type = "Application"
	}
	return e
}

// ParseFile reads and parses a desktop file, recording its path.
func ParseFile(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}
	e := Parse(string(data))
	e.SourcePath = path
	return e, nil
}

// stripEnvPrefix removes the leading `env KEY=VALUE ...` wrapper from
// an exec command. The first field without an '=' marks the command
// start; when every field has one the whole tail is kept, matching the
// best-effort nature of the heuristic.
func stripEnvPrefix(execCmd string) string {
	if !strings.HasPrefix(execCmd, "env ") {
		return execCmd
	}
	fields := strings.Fields(strings.TrimPrefix(execCmd, "env "))
	start := 0
	for i, f := range fields {
		if !strings.Contains(f, "=") {
			start = i
			break
		}
	}
	return strings.Join(fields[start:], " ")
}

// Serialize renders the entry in desktop file format. Field order is
// fixed; optional fields are omitted when empty, Terminal and Hidden
// are always written. The output ends with exactly one newline.
// Serialize(Parse(s)) is not byte-identical to s in general, but is
// idempotent after the first normalization pass.
func (e Entry) Serialize() string {
	entryType := e.Type
	if entryType == "" {
		entryType = "Application"
	}
	name := e.Name
	if name == "" {
		name = "Unnamed"
	}

	lines := []string{groupHeader, "Type=" + entryType, "Name=" + name}

	if e.Comment != "" {
		lines = append(lines, "Comment="+e.Comment)
	}
	if e.Icon != "" {
		lines = append(lines, "Icon="+e.Icon)
	}
	if e.Exec != "" {
		lines = append(lines, "Exec="+wrapEnvPrefix(e.Exec, e.EnvVars))
	}
	if e.Path != "" {
		lines = append(lines, "Path="+e.Path)
	}

	lines = append(lines, "Terminal="+boolString(e.Terminal))

	if e.Categories != "" {
		lines = append(lines, "Categories="+e.Categories)
	}
	if e.Keywords != "" {
		lines = append(lines, "Keywords="+e.Keywords)
	}
	if e.URL != "" {
		lines = append(lines, "URL="+e.URL)
	}
	if e.MimeType != "" {
		lines = append(lines, "MimeType="+e.MimeType)
	}
	if e.StartupWMClass != "" {
		lines = append(lines, "StartupWMClass="+e.StartupWMClass)
	}

	lines = append(lines, "Hidden="+boolString(e.Hidden))

	if e.EnvVars != "" {
		lines = append(lines, "X-Env-Vars="+e.EnvVars)
	}

	return strings.Join(lines, "\n") + "\n"
}

// wrapEnvPrefix rebuilds the `env KEY=VALUE ... command` form from the
// stored env vars and the bare command.
func wrapEnvPrefix(execCmd, envVars string) string {
	if envVars == "" {
		return execCmd
	}
	var parts []string
	for _, p := range strings.Split(envVars, ";") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return execCmd
	}
	return "env " + strings.Join(parts, " ") + " " + execCmd
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Filename derives the on-disk filename for an unsaved entry from its
// name: lowercased, spaces replaced with hyphens.
func (e Entry) Filename() string {
	return strings.ReplaceAll(strings.ToLower(e.Name), " ", "-") + FileSuffix
}
