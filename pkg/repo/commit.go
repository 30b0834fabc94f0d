package repo

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/objects"
)

// Commit builds and persists a new commit from HEAD's files plus the
// currently staged changes, advances the current branch to it, and
// clears the staging area. It fails with ErrEmptyCommitMessage if
// message is blank or whitespace-only and ErrNothingToCommit if nothing
// is staged, per spec.md §4.4.
func (r *Repo) Commit(message string) (objects.Hash, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyCommitMessage
	}

	area, err := r.Staging.Load()
	if err != nil {
		return "", err
	}
	if area.IsEmpty() {
		return "", ErrNothingToCommit
	}

	parentID, err := r.headCommitID()
	if err != nil {
		return "", err
	}
	parent, err := r.getCommit(parentID)
	if err != nil {
		return "", err
	}

	files := make(map[string]objects.Hash, len(parent.Files))
	for path, blob := range parent.Files {
		files[path] = blob
	}
	added, removed := area.Snapshot()
	for path := range removed {
		delete(files, path)
	}
	for path, blob := range added {
		files[path] = blob
	}

	c := &objects.Commit{
		Message:   message,
		Timestamp: time.Now(),
		Parent:    parentID,
		Files:     files,
	}
	id, err := r.Store.PutCommit(c)
	if err != nil {
		return "", err
	}

	branch, err := r.headBranch()
	if err != nil {
		return "", err
	}
	if err := r.Refs.SetBranch(branch, id); err != nil {
		return "", err
	}
	area.Clear()
	if err := r.Staging.Save(area); err != nil {
		return "", err
	}
	if r.commitCache != nil {
		r.commitCache.Add(id, c)
	}

	r.Logger.Info("created commit", zap.String("id", string(id)), zap.String("branch", branch))
	return id, nil
}
