package repo

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/objects"
	"github.com/odvcencio/gitlet/pkg/staging"
)

// checkUntrackedInTheWay is the single safety guard shared by switch,
// reset, and merge (spec.md §4.5): before any write, the set of
// untracked paths (present in the working tree but neither tracked by
// HEAD nor staged as an addition) must not overlap with any path the
// incoming materialization would overwrite or remove.
func (r *Repo) checkUntrackedInTheWay(target *objects.Commit) error {
	head, err := r.headCommit()
	if err != nil {
		return err
	}
	area, err := r.Staging.Load()
	if err != nil {
		return err
	}

	affected := make(map[string]bool, len(target.Files)+len(head.Files))
	for path := range target.Files {
		affected[path] = true
	}
	for path := range head.Files {
		affected[path] = true
	}

	for path := range affected {
		if _, tracked := head.Files[path]; tracked {
			continue
		}
		if _, staged := area.Added[path]; staged {
			continue
		}
		if fileExists(r.absPath(path)) {
			return ErrUntrackedInTheWay
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// materializeTo writes target's files into the working directory
// (creating or overwriting), deletes any file tracked by the current
// HEAD but absent from target, and clears the staging area. The caller
// is responsible for running checkUntrackedInTheWay first.
func (r *Repo) materializeTo(target *objects.Commit) error {
	head, err := r.headCommit()
	if err != nil {
		return err
	}

	for path, blob := range target.Files {
		data, err := r.Store.GetBlob(blob)
		if err != nil {
			return err
		}
		if err := writeWorkingFile(r.absPath(path), data); err != nil {
			return err
		}
	}
	for path := range head.Files {
		if _, ok := target.Files[path]; !ok {
			if err := os.Remove(r.absPath(path)); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}

	return r.Staging.Save(staging.New())
}

// Restore overwrites the working-tree path with HEAD's blob for path.
// Fails with ErrFileNotInCommit if HEAD does not track path. Never
// touches the staging area or any other file.
func (r *Repo) Restore(path string) error {
	head, err := r.headCommit()
	if err != nil {
		return err
	}
	return r.restoreFrom(head, path)
}

// RestoreFromCommit resolves commitPrefix and restores path from it.
// Fails with ErrNoSuchCommit if the prefix does not resolve.
func (r *Repo) RestoreFromCommit(commitPrefix, path string) error {
	id, err := r.Store.ResolvePrefix(commitPrefix)
	if err != nil || id == "" {
		return ErrNoSuchCommit
	}
	c, err := r.getCommit(id)
	if err != nil {
		return ErrNoSuchCommit
	}
	return r.restoreFrom(c, path)
}

func (r *Repo) restoreFrom(c *objects.Commit, path string) error {
	blob, ok := c.Files[path]
	if !ok {
		return ErrFileNotInCommit
	}
	data, err := r.Store.GetBlob(blob)
	if err != nil {
		return err
	}
	return writeWorkingFile(r.absPath(path), data)
}

// Switch checks out branch: fails ErrNoSuchBranch if unknown,
// ErrAlreadyOnBranch if it is already current; otherwise runs the
// safety guard, materializes the branch tip, and repoints HEAD.
func (r *Repo) Switch(branch string) error {
	if !r.Refs.BranchExists(branch) {
		return ErrNoSuchBranch
	}
	current, err := r.headBranch()
	if err != nil {
		return err
	}
	if branch == current {
		return ErrAlreadyOnBranch
	}

	targetID, err := r.Refs.BranchCommit(branch)
	if err != nil {
		return err
	}
	target, err := r.getCommit(targetID)
	if err != nil {
		return err
	}

	if err := r.checkUntrackedInTheWay(target); err != nil {
		return err
	}
	if err := r.materializeTo(target); err != nil {
		return err
	}
	r.Logger.Info("switched branch", zap.String("from", current), zap.String("to", branch))
	return r.Refs.SetHeadBranch(branch)
}

// Reset points the current branch at commitID after materializing it,
// leaving HEAD naming the same branch. Fails ErrNoSuchCommit if unknown.
func (r *Repo) Reset(commitID string) error {
	id, err := r.Store.ResolvePrefix(commitID)
	if err != nil || id == "" {
		return ErrNoSuchCommit
	}
	target, err := r.getCommit(id)
	if err != nil {
		return ErrNoSuchCommit
	}

	if err := r.checkUntrackedInTheWay(target); err != nil {
		return err
	}
	if err := r.materializeTo(target); err != nil {
		return err
	}

	branch, err := r.headBranch()
	if err != nil {
		return err
	}
	return r.Refs.SetBranch(branch, id)
}

func writeWorkingFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
