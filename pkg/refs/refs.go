// Package refs manages the branch pointers and the HEAD symbolic
// reference of a gitlet repository, grounded on the teacher's
// pkg/repo/refs.go and pkg/repo/branch.go but simplified to match
// spec.md §4.2's flat, lock-free contract: single-process access only,
// one file per branch under .gitlet/branches, and a plain .gitlet/head
// file holding the active branch name (never "ref: refs/heads/...").
package refs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/odvcencio/gitlet/pkg/objects"
)

// ErrNotFound indicates an unknown branch name.
var ErrNotFound = errors.New("branch not found")

// ErrExists indicates an attempt to create a branch that already exists.
var ErrExists = errors.New("branch already exists")

// Store manages HEAD and branch pointers under a .gitlet directory.
type Store struct {
	gitletDir string
}

// NewStore creates a Store rooted at gitletDir.
func NewStore(gitletDir string) *Store {
	return &Store{gitletDir: gitletDir}
}

func (s *Store) headPath() string          { return filepath.Join(s.gitletDir, "head") }
func (s *Store) branchesDir() string       { return filepath.Join(s.gitletDir, "branches") }
func (s *Store) branchPath(name string) string {
	return filepath.Join(s.branchesDir(), name)
}

// HeadBranch returns the name of the currently checked-out branch.
func (s *Store) HeadBranch() (string, error) {
	data, err := os.ReadFile(s.headPath())
	if err != nil {
		return "", fmt.Errorf("read head: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// SetHeadBranch points HEAD at the named branch (which need not yet exist
// on disk — callers create the branch file separately).
func (s *Store) SetHeadBranch(name string) error {
	if err := os.MkdirAll(s.gitletDir, 0o755); err != nil {
		return fmt.Errorf("set head: mkdir: %w", err)
	}
	return writeFileAtomic(s.headPath(), []byte(name+"\n"))
}

// BranchCommit returns the commit id the named branch points at.
func (s *Store) BranchCommit(name string) (objects.Hash, error) {
	data, err := os.ReadFile(s.branchPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read branch %q: %w", name, err)
	}
	return objects.Hash(strings.TrimRight(string(data), "\n")), nil
}

// BranchExists reports whether a branch with the given name exists.
func (s *Store) BranchExists(name string) bool {
	_, err := os.Stat(s.branchPath(name))
	return err == nil
}

// SetBranch advances (or creates) the named branch to point at id.
func (s *Store) SetBranch(name string, id objects.Hash) error {
	if err := os.MkdirAll(s.branchesDir(), 0o755); err != nil {
		return fmt.Errorf("set branch %q: mkdir: %w", name, err)
	}
	return writeFileAtomic(s.branchPath(name), []byte(string(id)+"\n"))
}

// CreateBranch creates a new branch pointing at id. It fails with ErrExists
// if the branch already exists.
func (s *Store) CreateBranch(name string, id objects.Hash) error {
	if s.BranchExists(name) {
		return ErrExists
	}
	return s.SetBranch(name, id)
}

// DeleteBranch removes the named branch's pointer file.
func (s *Store) DeleteBranch(name string) error {
	if !s.BranchExists(name) {
		return ErrNotFound
	}
	return os.Remove(s.branchPath(name))
}

// ListBranches returns every branch name, sorted by Unicode code point.
func (s *Store) ListBranches() ([]string, error) {
	entries, err := os.ReadDir(s.branchesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("tmpfile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
