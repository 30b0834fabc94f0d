package repo

import "testing"

func TestBranch_RejectsDuplicateName(t *testing.T) {
	r := newTestRepo(t)
	if err := r.Branch("dev"); err != nil {
		t.Fatalf("Branch: %v", err)
	}
	if err := r.Branch("dev"); err != ErrBranchExists {
		t.Errorf("Branch(duplicate) = %v, want ErrBranchExists", err)
	}
}

func TestRemoveBranch_RejectsCurrentAndUnknown(t *testing.T) {
	r := newTestRepo(t)
	if err := r.RemoveBranch("main"); err != ErrCannotRemoveCurrent {
		t.Errorf("RemoveBranch(current) = %v, want ErrCannotRemoveCurrent", err)
	}
	if err := r.RemoveBranch("ghost"); err != ErrBranchNotFoundForRm {
		t.Errorf("RemoveBranch(unknown) = %v, want ErrBranchNotFoundForRm", err)
	}

	if err := r.Branch("dev"); err != nil {
		t.Fatalf("Branch: %v", err)
	}
	if err := r.RemoveBranch("dev"); err != nil {
		t.Errorf("RemoveBranch(dev): %v", err)
	}
}

func TestRemove_NoReasonToRemoveUntrackedFile(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "a.txt", "1")
	if err := r.Remove("a.txt"); err != ErrNoReasonToRemove {
		t.Errorf("Remove(untracked, unstaged) = %v, want ErrNoReasonToRemove", err)
	}
}

func TestRestore_NeverTouchesStaging(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "a.txt", "1")
	mustAddCommit(t, r, "a.txt", "base")

	writeFile(t, r, "b.txt", "2")
	if err := r.Add("b.txt"); err != nil {
		t.Fatalf("Add b.txt: %v", err)
	}
	writeFile(t, r, "a.txt", "changed")

	if err := r.Restore("a.txt"); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	area, err := r.Staging.Load()
	if err != nil {
		t.Fatalf("Staging.Load: %v", err)
	}
	added, _ := area.Snapshot()
	if _, ok := added["b.txt"]; !ok {
		t.Errorf("Restore of a.txt must not clear b.txt's staged entry, got %v", added)
	}
	if got := readFile(t, r, "a.txt"); got != "1" {
		t.Errorf("a.txt = %q, want %q", got, "1")
	}
}
