package repo

import "errors"

// User-facing sentinel errors. Each carries the exact text spec.md (or, for
// messages spec.md leaves to the implementer's discretion, this
// implementation's register-matched choice) mandates be printed verbatim
// to stdout with exit code 0. They are never fmt.Errorf-wrapped between
// where they are returned and where cmd/gitlet prints them, so the printed
// line is always byte-identical to the error's own text.
var (
	ErrNotInitialized      = errors.New("Not in an initialized Gitlet directory.")
	ErrAlreadyInitialized  = errors.New("A Gitlet version-control system already exists in the current directory.")
	ErrEmptyCommitMessage  = errors.New("Please enter a commit message.")
	ErrNothingToCommit     = errors.New("No changes added to the commit.")
	ErrFileNotInCommit     = errors.New("File does not exist in that commit.")
	ErrNoSuchCommit        = errors.New("No commit with that id exists.")
	ErrNoSuchBranch        = errors.New("No such branch exists.")
	ErrAlreadyOnBranch     = errors.New("No need to switch to the current branch.")
	ErrUntrackedInTheWay   = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrNoReasonToRemove    = errors.New("No reason to remove the file.")
	ErrBranchExists        = errors.New("A branch with that name already exists.")
	ErrBranchNotFoundForRm = errors.New("A branch with that name does not exist.")
	ErrCannotRemoveCurrent = errors.New("Cannot remove the current branch.")
	ErrUncommittedChanges  = errors.New("You have uncommitted changes.")
	ErrMergeBranchNotFound = errors.New("A branch with that name does not exist.")
	ErrMergeSelf           = errors.New("Cannot merge a branch with itself.")
)
