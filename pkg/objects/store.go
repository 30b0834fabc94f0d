package objects

import (
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a blob or commit id has no corresponding
// object in the store.
var ErrNotFound = fmt.Errorf("object not found")

// Store is a flat, content-addressed object store rooted at a .gitlet
// directory. Layout is exactly the spec's persisted layout: commits and
// blobs each live directly under their own directory, keyed by full id —
// unlike the teacher's two-character fan-out (objects/ab/cdef...), which
// spec.md §6 does not specify and this implementation deliberately does
// not reproduce.
type Store struct {
	gitletDir string
}

// NewStore creates a Store rooted at gitletDir (the .gitlet directory).
// The commits/ and blobs/ subdirectories are created lazily on first write.
func NewStore(gitletDir string) *Store {
	return &Store{gitletDir: gitletDir}
}

func (s *Store) blobPath(h Hash) string   { return filepath.Join(s.gitletDir, "blobs", string(h)) }
func (s *Store) commitPath(h Hash) string { return filepath.Join(s.gitletDir, "commits", string(h)) }

// PutBlob writes data verbatim under its content hash, if not already
// present, and returns that hash. Idempotent.
func (s *Store) PutBlob(data []byte) (Hash, error) {
	h := HashBytes(data)
	path := s.blobPath(h)
	if _, err := os.Stat(path); err == nil {
		return h, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("put blob: mkdir: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("put blob: %w", err)
	}
	return h, nil
}

// GetBlob returns the raw bytes stored under id.
func (s *Store) GetBlob(id Hash) ([]byte, error) {
	data, err := os.ReadFile(s.blobPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get blob %s: %w", id, err)
	}
	return data, nil
}

// HasBlob reports whether id exists in the store.
func (s *Store) HasBlob(id Hash) bool {
	_, err := os.Stat(s.blobPath(id))
	return err == nil
}

// PutCommit serializes and stores c under its content-derived id, setting
// c.ID as a side effect, and returns that id.
func (s *Store) PutCommit(c *Commit) (Hash, error) {
	id := ComputeID(c)
	c.ID = id
	path := s.commitPath(id)
	if _, err := os.Stat(path); err == nil {
		return id, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("put commit: mkdir: %w", err)
	}
	if err := writeFileAtomic(path, Serialize(c)); err != nil {
		return "", fmt.Errorf("put commit: %w", err)
	}
	return id, nil
}

// GetCommit reads and deserializes the commit stored under id.
func (s *Store) GetCommit(id Hash) (*Commit, error) {
	data, err := os.ReadFile(s.commitPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get commit %s: %w", id, err)
	}
	c, err := Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", id, err)
	}
	c.ID = id
	return c, nil
}

// ListCommitIDs enumerates every commit id in the store, in directory
// enumeration order (order is otherwise unspecified, per spec.md §4.1).
func (s *Store) ListCommitIDs() ([]Hash, error) {
	dir := filepath.Join(s.gitletDir, "commits")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list commits: %w", err)
	}
	ids := make([]Hash, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ids = append(ids, Hash(e.Name()))
	}
	return ids, nil
}

// ResolvePrefix returns the unique commit id sharing prefix as a leading
// substring, or "" if none match. If several commits share the prefix, the
// first one encountered in ListCommitIDs order wins — an explicit,
// documented relaxation of true ambiguity detection (spec.md §4.1/§9).
func (s *Store) ResolvePrefix(prefix string) (Hash, error) {
	if len(prefix) == 40 {
		if s.hasCommit(Hash(prefix)) {
			return Hash(prefix), nil
		}
	}
	ids, err := s.ListCommitIDs()
	if err != nil {
		return "", err
	}
	for _, id := range ids {
		if id.HasPrefix(prefix) {
			return id, nil
		}
	}
	return "", nil
}

func (s *Store) hasCommit(id Hash) bool {
	_, err := os.Stat(s.commitPath(id))
	return err == nil
}

// writeFileAtomic writes data to path via a temp file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// partially-written object behind.
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
