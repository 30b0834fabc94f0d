package repo

// Branch creates a new branch named name pointing at HEAD's current
// commit. Fails with ErrBranchExists if the name is already taken.
func (r *Repo) Branch(name string) error {
	id, err := r.headCommitID()
	if err != nil {
		return err
	}
	if err := r.Refs.CreateBranch(name, id); err != nil {
		return ErrBranchExists
	}
	return nil
}

// RemoveBranch deletes the named branch. Fails with
// ErrBranchNotFoundForRm if it does not exist, ErrCannotRemoveCurrent if
// it is the currently checked-out branch.
func (r *Repo) RemoveBranch(name string) error {
	current, err := r.headBranch()
	if err != nil {
		return err
	}
	if name == current {
		return ErrCannotRemoveCurrent
	}
	if err := r.Refs.DeleteBranch(name); err != nil {
		return ErrBranchNotFoundForRm
	}
	return nil
}
