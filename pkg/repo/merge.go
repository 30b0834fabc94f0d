package repo

import (
	"bytes"
	"fmt"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/odvcencio/gitlet/pkg/objects"
)

// MergeOutcome reports how Merge concluded, so the CLI layer can print
// the right one-line message.
type MergeOutcome struct {
	FastForwarded   bool
	AlreadyAncestor bool
	Conflicted      bool
	ConflictedFiles []string
	CommitID        objects.Hash
}

// Merge merges branch into the current branch, per spec.md §4.7.
func (r *Repo) Merge(branch string) (*MergeOutcome, error) {
	area, err := r.Staging.Load()
	if err != nil {
		return nil, err
	}
	if !area.IsEmpty() {
		return nil, ErrUncommittedChanges
	}

	if !r.Refs.BranchExists(branch) {
		return nil, ErrMergeBranchNotFound
	}
	currentBranch, err := r.headBranch()
	if err != nil {
		return nil, err
	}
	if branch == currentBranch {
		return nil, ErrMergeSelf
	}

	otherID, err := r.Refs.BranchCommit(branch)
	if err != nil {
		return nil, err
	}
	other, err := r.getCommit(otherID)
	if err != nil {
		return nil, err
	}

	if err := r.checkUntrackedInTheWay(other); err != nil {
		return nil, err
	}

	currentID, err := r.headCommitID()
	if err != nil {
		return nil, err
	}
	current, err := r.getCommit(currentID)
	if err != nil {
		return nil, err
	}

	split, err := r.splitPoint(currentID, otherID)
	if err != nil {
		return nil, err
	}

	if split == currentID {
		if err := r.materializeTo(other); err != nil {
			return nil, err
		}
		if err := r.Refs.SetBranch(currentBranch, otherID); err != nil {
			return nil, err
		}
		return &MergeOutcome{FastForwarded: true}, nil
	}
	if split == otherID {
		return &MergeOutcome{AlreadyAncestor: true}, nil
	}

	splitCommit, err := r.getCommit(split)
	if err != nil {
		return nil, err
	}

	universe := lo.Uniq(append(append(lo.Keys(splitCommit.Files), lo.Keys(current.Files)...), lo.Keys(other.Files)...))

	newArea, err := r.Staging.Load()
	if err != nil {
		return nil, err
	}

	var conflicted []string

	for _, f := range universe {
		s, sOK := splitCommit.Files[f]
		c, cOK := current.Files[f]
		o, oOK := other.Files[f]

		currChanged := sOK && cOK && c != s
		otherChanged := sOK && oOK && o != s

		switch {
		case currChanged && otherChanged:
			content, err := r.conflictContent(c, cOK, o, oOK)
			if err != nil {
				return nil, err
			}
			blob, err := r.Store.PutBlob(content)
			if err != nil {
				return nil, err
			}
			if err := writeWorkingFile(r.absPath(f), content); err != nil {
				return nil, err
			}
			newArea.StageAdd(f, blob)
			conflicted = append(conflicted, f)
			r.Logger.Warn("merge conflict", zap.String("path", f))

		case sOK && cOK && !oOK:
			newArea.StageRemove(f)
			if err := removeWorkingFile(r.absPath(f)); err != nil {
				return nil, err
			}

		case !sOK && !cOK && oOK:
			data, err := r.Store.GetBlob(o)
			if err != nil {
				return nil, err
			}
			if err := writeWorkingFile(r.absPath(f), data); err != nil {
				return nil, err
			}
			newArea.StageAdd(f, o)

		case sOK && !currChanged && otherChanged:
			data, err := r.Store.GetBlob(o)
			if err != nil {
				return nil, err
			}
			if err := writeWorkingFile(r.absPath(f), data); err != nil {
				return nil, err
			}
			newArea.StageAdd(f, o)

		case sOK && !currChanged && !cOK && !oOK:
			if err := removeWorkingFile(r.absPath(f)); err != nil {
				return nil, err
			}

		default:
			// No action: keep the current side's state.
		}
	}

	added, _ := newArea.Snapshot()
	mergeCommit := &objects.Commit{
		Message:      fmt.Sprintf("Merged %s into %s.", branch, currentBranch),
		Parent:       currentID,
		SecondParent: otherID,
		Files:        added,
	}
	id, err := r.commitMerge(mergeCommit)
	if err != nil {
		return nil, err
	}
	newArea.Clear()
	if err := r.Staging.Save(newArea); err != nil {
		return nil, err
	}

	return &MergeOutcome{
		Conflicted:      len(conflicted) > 0,
		ConflictedFiles: conflicted,
		CommitID:        id,
	}, nil
}

// commitMerge persists a fully-built merge commit (two parents already
// set) and advances the current branch. Unlike Commit, the file set here
// is the staged-additions snapshot alone rather than HEAD's files plus
// staging, per spec.md §9's documented merge commit file-set defect.
func (r *Repo) commitMerge(c *objects.Commit) (objects.Hash, error) {
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
	if r.commitCache != nil {
		r.commitCache.Add(id, c)
	}
	r.Logger.Info("created merge commit", zap.String("id", string(id)))
	return id, nil
}

// conflictContent synthesizes the exact conflict-marker bytes mandated by
// spec.md §4.7: the HEAD marker, current content verbatim (no inserted
// newline), the separator, other content verbatim, and the closing
// marker.
func (r *Repo) conflictContent(currentBlob objects.Hash, currentPresent bool, otherBlob objects.Hash, otherPresent bool) ([]byte, error) {
	var current, other []byte
	var err error
	if currentPresent {
		current, err = r.Store.GetBlob(currentBlob)
		if err != nil {
			return nil, err
		}
	}
	if otherPresent {
		other, err = r.Store.GetBlob(otherBlob)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	buf.WriteString("<<<<<<< HEAD\n")
	buf.Write(current)
	buf.WriteString("=======\n")
	buf.Write(other)
	buf.WriteString(">>>>>>>\n")
	return buf.Bytes(), nil
}

func removeWorkingFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// splitPoint implements the double-ended BFS latest-common-ancestor
// algorithm from spec.md §4.7: a queue seeded with [other, current]
// (other enqueued first), dequeuing and marking seen, returning the
// first id dequeued that was already seen. This is deliberately not the
// teacher's generation-number/heap-pruned merge-base search; it must be
// preserved bug-for-bug, enqueue-order bias included.
func (r *Repo) splitPoint(current, other objects.Hash) (objects.Hash, error) {
	visited := map[objects.Hash]bool{}
	queue := []objects.Hash{other, current}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if visited[id] {
			return id, nil
		}
		visited[id] = true

		c, err := r.getCommit(id)
		if err != nil {
			return "", err
		}
		if c.Parent != "" {
			queue = append(queue, c.Parent)
		}
		if c.SecondParent != "" {
			queue = append(queue, c.SecondParent)
		}
	}
	return "", fmt.Errorf("merge: no common ancestor between %s and %s", current, other)
}
