package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDesktopFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestSnapshot_InitializesRepoAndCommits(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "applications")
	if err := os.MkdirAll(source, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDesktopFile(t, source, "app.desktop", "[Desktop Entry]\nName=App\n")

	m := New(filepath.Join(tmp, "backups"))
	committed, err := m.Snapshot(source, "before delete")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if !committed {
		t.Fatal("expected a commit on first snapshot")
	}

	if _, err := os.Stat(filepath.Join(m.RepoPath, "app.desktop")); err != nil {
		t.Errorf("backup copy missing: %v", err)
	}

	when, message, err := m.LastSnapshot()
	if err != nil {
		t.Fatalf("LastSnapshot() error = %v", err)
	}
	if when.IsZero() {
		t.Error("expected non-zero snapshot time")
	}
	if message != "before delete" {
		t.Errorf("message = %q, want before delete", message)
	}
}

func TestSnapshot_NoChanges_NoCommit(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "applications")
	if err := os.MkdirAll(source, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDesktopFile(t, source, "app.desktop", "[Desktop Entry]\nName=App\n")

	m := New(filepath.Join(tmp, "backups"))
	if _, err := m.Snapshot(source, "first"); err != nil {
		t.Fatalf("first Snapshot() error = %v", err)
	}

	committed, err := m.Snapshot(source, "second")
	if err != nil {
		t.Fatalf("second Snapshot() error = %v", err)
	}
	if committed {
		t.Error("expected no commit when nothing changed")
	}

	_, message, err := m.LastSnapshot()
	if err != nil {
		t.Fatalf("LastSnapshot() error = %v", err)
	}
	if message != "first" {
		t.Errorf("message = %q, want first", message)
	}
}

func TestSnapshot_MirrorsDeletions(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "applications")
	if err := os.MkdirAll(source, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDesktopFile(t, source, "keep.desktop", "[Desktop Entry]\nName=Keep\n")
	writeDesktopFile(t, source, "gone.desktop", "[Desktop Entry]\nName=Gone\n")

	m := New(filepath.Join(tmp, "backups"))
	if _, err := m.Snapshot(source, "both"); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if err := os.Remove(filepath.Join(source, "gone.desktop")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	committed, err := m.Snapshot(source, "after delete")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if !committed {
		t.Fatal("expected a commit recording the deletion")
	}

	if _, err := os.Stat(filepath.Join(m.RepoPath, "gone.desktop")); !os.IsNotExist(err) {
		t.Error("deleted entry should be gone from the worktree")
	}
	if _, err := os.Stat(filepath.Join(m.RepoPath, "keep.desktop")); err != nil {
		t.Errorf("kept entry missing: %v", err)
	}
}

func TestSnapshot_MissingSourceDir(t *testing.T) {
	tmp := t.TempDir()
	m := New(filepath.Join(tmp, "backups"))

	committed, err := m.Snapshot(filepath.Join(tmp, "nope"), "empty")
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if committed {
		t.Error("expected no commit for an empty snapshot")
	}
}

func TestLastSnapshot_NoRepo(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "backups"))

	when, message, err := m.LastSnapshot()
	if err != nil {
		t.Fatalf("LastSnapshot() error = %v", err)
	}
	if !when.IsZero() || message != "" {
		t.Errorf("expected zero result, got %v %q", when, message)
	}
}
