package repo

import (
	"os"
)

// Add stages path per spec.md §4.3: if the working-tree content matches
// what HEAD already records for path, any pending stage of path is
// canceled (unstage_add + unstage_remove). Otherwise the current content
// is hashed, written to the object store, staged as an addition, and any
// pending removal of path is canceled.
func (r *Repo) Add(path string) error {
	data, err := os.ReadFile(r.absPath(path))
	if err != nil {
		return err
	}

	head, err := r.headCommit()
	if err != nil {
		return err
	}

	blob, err := r.Store.PutBlob(data)
	if err != nil {
		return err
	}

	area, err := r.Staging.Load()
	if err != nil {
		return err
	}

	if headBlob, tracked := head.Files[path]; tracked && headBlob == blob {
		area.UnstageAdd(path)
		area.UnstageRemove(path)
	} else {
		area.StageAdd(path, blob)
		area.UnstageRemove(path)
	}

	return r.Staging.Save(area)
}

// Remove implements the `rm` command: unstage a pending addition of path;
// if path is tracked by HEAD, stage it for removal and delete it from the
// working tree (if still present). Fails with ErrNoReasonToRemove if path
// is neither staged nor tracked.
func (r *Repo) Remove(path string) error {
	head, err := r.headCommit()
	if err != nil {
		return err
	}

	area, err := r.Staging.Load()
	if err != nil {
		return err
	}

	_, staged := area.Added[path]
	_, tracked := head.Files[path]

	if !staged && !tracked {
		return ErrNoReasonToRemove
	}

	if staged {
		area.UnstageAdd(path)
	}
	if tracked {
		area.StageRemove(path)
		if err := os.Remove(r.absPath(path)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return r.Staging.Save(area)
}
