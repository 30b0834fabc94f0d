// Package staging implements gitlet's staging area: the pending additions
// and removals that the next commit will apply on top of HEAD. Grounded on
// the teacher's pkg/repo/staging.go Staging/StagingEntry JSON index, but
// reshaped around spec.md §3's dual added/removed map model (no on-disk
// per-entry stat metadata — that is a working-tree-freshness optimization
// the teacher needs for its stat-based status cache; spec.md's status
// computation always re-hashes, so it is unneeded here).
package staging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/odvcencio/gitlet/pkg/objects"
)

// Area holds the added and removed path sets. A path is in Added XOR
// Removed XOR neither (spec.md §3 invariant 5); callers are responsible
// for maintaining that invariant — the helper methods below all do.
type Area struct {
	Added   map[string]objects.Hash `json:"added"`
	Removed map[string]bool        `json:"removed"`
}

// New returns an empty staging area.
func New() *Area {
	return &Area{Added: map[string]objects.Hash{}, Removed: map[string]bool{}}
}

// StageAdd records path as an intended addition with the given blob,
// clearing any pending removal of the same path.
func (a *Area) StageAdd(path string, blob objects.Hash) {
	delete(a.Removed, path)
	a.Added[path] = blob
}

// StageRemove records path as an intended removal, clearing any pending
// addition of the same path.
func (a *Area) StageRemove(path string) {
	delete(a.Added, path)
	a.Removed[path] = true
}

// UnstageAdd clears any pending addition of path.
func (a *Area) UnstageAdd(path string) {
	delete(a.Added, path)
}

// UnstageRemove clears any pending removal of path.
func (a *Area) UnstageRemove(path string) {
	delete(a.Removed, path)
}

// IsEmpty reports whether there are no pending additions or removals.
func (a *Area) IsEmpty() bool {
	return len(a.Added) == 0 && len(a.Removed) == 0
}

// Snapshot returns independent copies of the added and removed maps.
func (a *Area) Snapshot() (added map[string]objects.Hash, removed map[string]bool) {
	added = make(map[string]objects.Hash, len(a.Added))
	for k, v := range a.Added {
		added[k] = v
	}
	removed = make(map[string]bool, len(a.Removed))
	for k := range a.Removed {
		removed[k] = true
	}
	return added, removed
}

// Clear empties both maps in place.
func (a *Area) Clear() {
	a.Added = map[string]objects.Hash{}
	a.Removed = map[string]bool{}
}

// Store persists a single Area to .gitlet/staging_area as JSON.
type Store struct {
	path string
}

// NewStore creates a Store rooted at gitletDir.
func NewStore(gitletDir string) *Store {
	return &Store{path: filepath.Join(gitletDir, "staging_area")}
}

// Load reads the persisted staging area, returning an empty Area if none
// has been written yet.
func (s *Store) Load() (*Area, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("load staging area: %w", err)
	}
	var a Area
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("load staging area: unmarshal: %w", err)
	}
	if a.Added == nil {
		a.Added = map[string]objects.Hash{}
	}
	if a.Removed == nil {
		a.Removed = map[string]bool{}
	}
	return &a, nil
}

// Save atomically persists a to disk.
func (s *Store) Save(a *Area) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("save staging area: marshal: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save staging area: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("save staging area: tmpfile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save staging area: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save staging area: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save staging area: rename: %w", err)
	}
	return nil
}
