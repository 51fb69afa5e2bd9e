package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Manager keeps versioned snapshots of the user applications directory
// in a local git repository. Snapshots are taken before destructive
// operations so a deleted or overwritten entry can be recovered with
// plain git tooling.
type Manager struct {
	RepoPath string
}

// New creates a manager for the given repository path. The repository
// is initialized lazily on the first snapshot.
func New(repoPath string) *Manager {
	return &Manager{RepoPath: repoPath}
}

// Snapshot mirrors every desktop file from sourceDir into the backup
// repository and commits the result. Returns false when nothing
// changed since the last snapshot.
func (m *Manager) Snapshot(sourceDir, message string) (bool, error) {
	repo, err := m.openOrInit()
	if err != nil {
		return false, err
	}

	if err := m.mirror(sourceDir); err != nil {
		return false, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, err
	}

	status, err := worktree.Status()
	if err != nil {
		return false, err
	}
	if status.IsClean() {
		return false, nil
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, err
	}

	if message == "" {
		message = "snapshot"
	}
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "menuentry",
			Email: "menuentry@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// LastSnapshot returns the time and message of the most recent
// snapshot, or a zero time when the repository has no commits.
func (m *Manager) LastSnapshot() (time.Time, string, error) {
	repo, err := git.PlainOpen(m.RepoPath)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return time.Time{}, "", nil
		}
		return time.Time{}, "", err
	}

	head, err := repo.Head()
	if err != nil {
		// Empty repository, no snapshots yet
		return time.Time{}, "", nil
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return time.Time{}, "", err
	}
	return commit.Author.When, strings.TrimSpace(commit.Message), nil
}

func (m *Manager) openOrInit() (*git.Repository, error) {
	repo, err := git.PlainOpen(m.RepoPath)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, err
	}

	if err := os.MkdirAll(m.RepoPath, 0755); err != nil {
		return nil, err
	}
	return git.PlainInit(m.RepoPath, false)
}

// mirror copies desktop files from sourceDir into the repository and
// removes repository copies whose source is gone, so the worktree
// matches the directory exactly.
func (m *Manager) mirror(sourceDir string) error {
	wanted := make(map[string]bool)

	dirents, err := os.ReadDir(sourceDir)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read source dir: %w", err)
	}

	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".desktop") {
			continue
		}
		wanted[d.Name()] = true

		data, err := os.ReadFile(filepath.Join(sourceDir, d.Name()))
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(m.RepoPath, d.Name()), data, 0644); err != nil {
			return err
		}
	}

	repoEnts, err := os.ReadDir(m.RepoPath)
	if err != nil {
		return err
	}
	for _, d := range repoEnts {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".desktop") || wanted[d.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(m.RepoPath, d.Name())); err != nil {
			return err
		}
	}
	return nil
}
