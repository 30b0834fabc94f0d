package objects

import "time"

// EpochOrigin is the fixed timestamp stamped on the initial commit of every
// fresh repository, so that Init produces a reproducible commit id across
// runs (spec.md §3 invariant 4).
var EpochOrigin = time.Unix(0, 0).UTC()

// Blob is an immutable byte sequence identified by the hex SHA-1 of its
// content.
type Blob struct {
	Data []byte
}

// Commit is an immutable snapshot of the working tree plus metadata.
// Id is the hex SHA-1 of Serialize(c) (see serialize.go) and is never
// stored as part of the canonical bytes that produce it.
type Commit struct {
	ID           Hash
	Message      string
	Timestamp    time.Time
	Parent       Hash            // empty for the initial commit only
	SecondParent Hash            // empty unless this is a merge commit
	Files        map[string]Hash // path -> blob id
}

// IsMerge reports whether c has two parents.
func (c *Commit) IsMerge() bool {
	return c.SecondParent != ""
}

// InitialCommit builds the canonical root commit: empty tree, no parents,
// the literal message "initial commit", and the fixed epoch timestamp.
func InitialCommit() *Commit {
	return &Commit{
		Message:   "initial commit",
		Timestamp: EpochOrigin,
		Files:     map[string]Hash{},
	}
}
