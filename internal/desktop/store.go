package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for save/delete policy violations. OS-level failures
// (fs.ErrPermission, fs.ErrNotExist) are propagated as-is so callers
// can tell the three classes apart with errors.Is.
var (
	ErrNameRequired = errors.New("entry name is required")
	ErrNotWritable  = errors.New("path is outside the user applications directory")
)

// Store reads and writes desktop entries across the user and system
// applications directories. The user directory is writable, the system
// directory is read-only. The store holds no state beyond the two
// paths; every call re-reads the filesystem.
type Store struct {
	UserDir   string
	SystemDir string
}

// NewStore creates a store over the given directories.
func NewStore(userDir, systemDir string) *Store {
	return &Store{UserDir: userDir, SystemDir: systemDir}
}

// FileRef is one enumerated desktop file and its writability.
type FileRef struct {
	Path     string
	Writable bool
}

// LoadResult is the outcome of loading a single enumerated file.
// A non-nil Err means the file was skipped, not that the load failed
// as a whole.
type LoadResult struct {
	Path     string
	Writable bool
	Entry    Entry
	Err      error
}

// Enumerate lists every desktop file in the user and system
// directories, sorted by filename case-insensitively. A directory
// that does not exist contributes no entries.
func (s *Store) Enumerate() []FileRef {
	var refs []FileRef
	refs = append(refs, listDir(s.UserDir, true)...)
	refs = append(refs, listDir(s.SystemDir, false)...)

	sort.Slice(refs, func(i, j int) bool {
		return strings.ToLower(filepath.Base(refs[i].Path)) <
			strings.ToLower(filepath.Base(refs[j].Path))
	})
	return refs
}

func listDir(dir string, writable bool) []FileRef {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var refs []FileRef
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), FileSuffix) {
			continue
		}
		refs = append(refs, FileRef{Path: filepath.Join(dir, d.Name()), Writable: writable})
	}
	return refs
}

// LoadAll parses every enumerated file. Files that cannot be read keep
// their error in the result instead of aborting the load, so the UI
// stays usable with one corrupt descriptor and can report skips.
func (s *Store) LoadAll() []LoadResult {
	refs := s.Enumerate()
	results := make([]LoadResult, 0, len(refs))

	for _, ref := range refs {
		res := LoadResult{Path: ref.Path, Writable: ref.Writable}
		res.Entry, res.Err = ParseFile(ref.Path)
		results = append(results, res)
	}
	return results
}

// Save writes the entry to disk and returns the written path. An
// explicit path wins; otherwise an existing SourcePath is overwritten
// in place; otherwise the filename is derived from the entry name and
// placed in the user directory. Parent directories are created as
// needed. Filesystem permission errors propagate untouched: they are
// how the caller learns a system entry was targeted.
func (s *Store) Save(e *Entry, explicitPath string) (string, error) {
	if strings.TrimSpace(e.Name) == "" {
		return "", ErrNameRequired
	}

	path := explicitPath
	if path == "" {
		if e.SourcePath != "" {
			path = e.SourcePath
		} else {
			path = filepath.Join(s.UserDir, e.Filename())
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(e.Serialize()), 0644); err != nil {
		return "", err
	}

	e.SourcePath = path
	return path, nil
}

// Delete removes a desktop file from the user directory. Paths outside
// it are rejected with ErrNotWritable before any mutation; missing
// files fail with the stat error (fs.ErrNotExist). In-memory entries
// that were loaded from the path are not touched.
func (s *Store) Delete(path string) error {
	if !s.IsUserPath(path) {
		return fmt.Errorf("%s: %w", path, ErrNotWritable)
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return os.Remove(path)
}

// IsUserPath reports whether the path lies under the user applications
// directory.
func (s *Store) IsUserPath(path string) bool {
	rel, err := filepath.Rel(s.UserDir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
