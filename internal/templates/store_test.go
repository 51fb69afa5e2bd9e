package templates

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoad_EmptyPath_ReturnsBuiltins(t *testing.T) {
	store := New("")

	tpls, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tpls) != len(Builtin()) {
		t.Fatalf("expected %d builtin templates, got %d", len(Builtin()), len(tpls))
	}
}

func TestLoad_MissingFile_ReturnsBuiltins(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.yaml"))

	tpls, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tpls) != len(Builtin()) {
		t.Fatalf("expected builtins only, got %d templates", len(tpls))
	}
}

func TestLoad_AppendsCustomTemplates(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "templates.yaml")
	content := `templates:
  - id: wine-app
    name: Wine Application
    type: Application
    exec: wine
    categories: Game;
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write templates: %v", err)
	}

	tpls, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tpls) != len(Builtin())+1 {
		t.Fatalf("expected %d templates, got %d", len(Builtin())+1, len(tpls))
	}

	last := tpls[len(tpls)-1]
	if last.ID != "wine-app" || last.Exec != "wine" {
		t.Errorf("unexpected custom template: %+v", last)
	}
}

func TestLoad_MalformedFile_StillReturnsBuiltins(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "templates.yaml")
	if err := os.WriteFile(path, []byte("templates: [not: valid"), 0644); err != nil {
		t.Fatalf("write templates: %v", err)
	}

	tpls, err := New(path).Load()
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
	if len(tpls) != len(Builtin()) {
		t.Errorf("builtins must survive a malformed custom file, got %d", len(tpls))
	}
}

func TestAdd_PersistsTemplate(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "templates.yaml")
	store := New(path)

	tpl := Template{Name: "Steam Game", Exec: "steam", Categories: "Game;"}
	if err := store.Add(tpl); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if len(file.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(file.Templates))
	}
	if file.Templates[0].ID != "steam-game" {
		t.Errorf("ID = %q, want steam-game (slugified)", file.Templates[0].ID)
	}
}

func TestAdd_DuplicateID_ReturnsError(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "templates.yaml"))

	tpl := Template{ID: "dup", Name: "Dup"}
	if err := store.Add(tpl); err != nil {
		t.Fatalf("first Add() should succeed: %v", err)
	}
	if err := store.Add(tpl); err == nil {
		t.Fatal("expected duplicate error, got nil")
	}
}

func TestAdd_RejectsEmptyName(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "templates.yaml"))

	if err := store.Add(Template{Name: "  "}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestTemplateEntry_BuildsDesktopEntry(t *testing.T) {
	tpl := Template{Name: "Terminal Application", Type: "Application", Exec: "htop", Terminal: true, Categories: "ConsoleOnly;"}

	e := tpl.Entry()
	if e.Type != "Application" || e.Exec != "htop" || !e.Terminal {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Name != "" {
		t.Errorf("template entry should leave Name empty, got %q", e.Name)
	}
	if e.SourcePath != "" {
		t.Errorf("template entry should have no source path, got %q", e.SourcePath)
	}
}

func TestTemplateEntry_DefaultsType(t *testing.T) {
	e := Template{Name: "X"}.Entry()
	if e.Type != "Application" {
		t.Errorf("Type = %q, want Application", e.Type)
	}
}
