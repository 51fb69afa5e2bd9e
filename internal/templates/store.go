package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"menuentry/internal/desktop"

	"gopkg.in/yaml.v3"
)

// Template is a starting point for a new desktop entry.
type Template struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Exec        string `yaml:"exec"`
	Terminal    bool   `yaml:"terminal"`
	Categories  string `yaml:"categories"`
}

// templateFile is the root YAML structure of a custom templates file.
type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// Store loads new-entry templates: a built-in set plus user-defined
// templates from a YAML file.
type Store struct {
	path string
}

// New creates a template store. An empty path means built-in
// templates only.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default custom templates path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "menuentry", "templates.yaml")
}

// Builtin returns the templates that ship with the application.
func Builtin() []Template {
	return []Template{
		{
			ID:          "application",
			Name:        "Application",
			Description: "Graphical application",
			Type:        "Application",
		},
		{
			ID:          "terminal",
			Name:        "Terminal Application",
			Description: "Command-line tool run in a terminal",
			Type:        "Application",
			Terminal:    true,
			Categories:  "ConsoleOnly;",
		},
		{
			ID:          "link",
			Name:        "Link",
			Description: "Shortcut to a URL",
			Type:        "Link",
		},
	}
}

// Load returns the built-in templates followed by any custom ones.
// A missing custom file is not an error; an unreadable or malformed
// one is, so the caller can report it while still offering built-ins.
func (s *Store) Load() ([]Template, error) {
	templates := Builtin()
	if s.path == "" {
		return templates, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return templates, nil
		}
		return templates, err
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return templates, err
	}

	for _, tpl := range file.Templates {
		tpl, err := sanitize(tpl)
		if err != nil {
			return templates, fmt.Errorf("template %q: %w", tpl.Name, err)
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

// Add appends a custom template to the store file.
func (s *Store) Add(tpl Template) error {
	tpl, err := sanitize(tpl)
	if err != nil {
		return err
	}

	path := s.path
	if path == "" {
		path = DefaultPath()
	}

	var file templateFile
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
	}

	for _, existing := range file.Templates {
		if strings.EqualFold(existing.ID, tpl.ID) {
			return fmt.Errorf("template with id %q already exists", tpl.ID)
		}
	}

	file.Templates = append(file.Templates, tpl)
	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Entry builds a fresh desktop entry from the template. The entry has
// no name or source path yet; the editor fills those in.
func (t Template) Entry() desktop.Entry {
	entryType := t.Type
	if entryType == "" {
		entryType = "Application"
	}
	return desktop.Entry{
		Type:       entryType,
		Exec:       t.Exec,
		Terminal:   t.Terminal,
		Categories: t.Categories,
	}
}

func sanitize(tpl Template) (Template, error) {
	tpl.ID = strings.TrimSpace(tpl.ID)
	tpl.Name = strings.TrimSpace(tpl.Name)

	if tpl.Name == "" {
		return tpl, fmt.Errorf("name is required")
	}
	if tpl.ID == "" {
		tpl.ID = slugify(tpl.Name)
	}
	if tpl.Type == "" {
		tpl.Type = "Application"
	}
	return tpl, nil
}

func slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return ""
	}

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		isAlphaNum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlphaNum {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "template"
	}
	return out
}
