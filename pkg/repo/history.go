package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"

	"github.com/odvcencio/gitlet/pkg/objects"
)

// LogEntry is one printable entry from a history query.
type LogEntry struct {
	Commit *objects.Commit
}

// Log follows HEAD's parent chain (never second_parent) back to the
// initial commit, most recent first.
func (r *Repo) Log() ([]LogEntry, error) {
	id, err := r.headCommitID()
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	for id != "" {
		c, err := r.getCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{Commit: c})
		id = c.Parent
	}
	return entries, nil
}

// GlobalLog returns every commit in the object store, in the store's
// enumeration order (spec.md §4.6: order unspecified).
func (r *Repo) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Store.ListCommitIDs()
	if err != nil {
		return nil, err
	}
	entries := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		c, err := r.getCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{Commit: c})
	}
	return entries, nil
}

// Find returns the ids of every commit whose message exactly equals
// message, in enumeration order.
func (r *Repo) Find(message string) ([]objects.Hash, error) {
	ids, err := r.Store.ListCommitIDs()
	if err != nil {
		return nil, err
	}
	var matches []objects.Hash
	for _, id := range ids {
		c, err := r.getCommit(id)
		if err != nil {
			return nil, err
		}
		if c.Message == message {
			matches = append(matches, id)
		}
	}
	return matches, nil
}

// Status is the result of a status computation, per spec.md §4.6.
type Status struct {
	Branches               []string
	ActiveBranch           string
	StagedFiles            []string
	RemovedFiles           []string
	ModificationsNotStaged []string
	UntrackedFiles         []string
}

// Status computes the five status sections. Sort order throughout is
// Unicode code-point order, which sort.Strings already gives for Go's
// UTF-8 string comparison.
func (r *Repo) Status() (*Status, error) {
	head, err := r.headCommit()
	if err != nil {
		return nil, err
	}
	active, err := r.headBranch()
	if err != nil {
		return nil, err
	}
	branches, err := r.Refs.ListBranches()
	if err != nil {
		return nil, err
	}
	area, err := r.Staging.Load()
	if err != nil {
		return nil, err
	}
	added, removed := area.Snapshot()

	workingFiles, err := r.listWorkingFiles()
	if err != nil {
		return nil, err
	}

	var modifications []string

	for path, headBlob := range head.Files {
		if _, staged := added[path]; staged {
			continue
		}
		content, present := workingFiles[path]
		if !present {
			if !removed[path] {
				modifications = append(modifications, path+" (deleted)")
			}
			continue
		}
		if objects.HashBytes(content) != headBlob {
			modifications = append(modifications, path+" (modified)")
		}
	}

	for path, stagedBlob := range added {
		content, present := workingFiles[path]
		if !present {
			modifications = append(modifications, path+" (deleted)")
			continue
		}
		if objects.HashBytes(content) != stagedBlob {
			modifications = append(modifications, path+" (modified)")
		}
	}
	sort.Strings(modifications)

	var untracked []string
	for path := range workingFiles {
		if _, tracked := head.Files[path]; tracked {
			continue
		}
		if _, staged := added[path]; staged {
			continue
		}
		untracked = append(untracked, path)
	}
	sort.Strings(untracked)

	return &Status{
		Branches:               sortedBranches(branches),
		ActiveBranch:           active,
		StagedFiles:            sortedStringKeys(added),
		RemovedFiles:           sortedKeys(removed),
		ModificationsNotStaged: modifications,
		UntrackedFiles:         untracked,
	}, nil
}

func sortedStringKeys(m map[string]objects.Hash) []string {
	out := lo.Keys(m)
	sort.Strings(out)
	return out
}

func sortedBranches(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := lo.Keys(m)
	sort.Strings(out)
	return out
}

// listWorkingFiles walks the working directory, excluding the metadata
// directory, returning repo-relative slash paths mapped to file content.
func (r *Repo) listWorkingFiles() (map[string][]byte, error) {
	out := map[string][]byte{}
	err := filepath.WalkDir(r.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(r.RootDir, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if rel == MetadataDirName {
				return filepath.SkipDir
			}
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("status: read %s: %w", rel, readErr)
		}
		out[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
