package repo

import "testing"

func TestFind_MatchesExactMessage(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "a.txt", "1")
	mustAddCommit(t, r, "a.txt", "fix bug")
	writeFile(t, r, "b.txt", "2")
	mustAddCommit(t, r, "b.txt", "fix bug")
	writeFile(t, r, "c.txt", "3")
	mustAddCommit(t, r, "c.txt", "add feature")

	ids, err := r.Find("fix bug")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Find(fix bug) = %v, want 2 ids", ids)
	}

	none, err := r.Find("no such message")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Find(unknown) = %v, want empty", none)
	}
}

func TestGlobalLog_IncludesEveryCommit(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "a.txt", "1")
	mustAddCommit(t, r, "a.txt", "c1")

	if err := r.Branch("dev"); err != nil {
		t.Fatalf("Branch: %v", err)
	}
	if err := r.Switch("dev"); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	writeFile(t, r, "b.txt", "2")
	mustAddCommit(t, r, "b.txt", "c2")

	entries, err := r.GlobalLog()
	if err != nil {
		t.Fatalf("GlobalLog: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("GlobalLog returned %d entries, want 3 (initial, c1, c2)", len(entries))
	}
}

func TestLog_FollowsParentOnlyNotSecondParent(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "f.txt", "X")
	mustAddCommit(t, r, "f.txt", "base")

	if err := r.Branch("dev"); err != nil {
		t.Fatalf("Branch: %v", err)
	}
	writeFile(t, r, "g.txt", "Y")
	mustAddCommit(t, r, "g.txt", "current modifies g")

	if err := r.Switch("dev"); err != nil {
		t.Fatalf("Switch dev: %v", err)
	}
	writeFile(t, r, "h.txt", "Z")
	mustAddCommit(t, r, "h.txt", "other adds h")

	if err := r.Switch("main"); err != nil {
		t.Fatalf("Switch main: %v", err)
	}
	if _, err := r.Merge("dev"); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	entries, err := r.Log()
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	for _, e := range entries {
		if e.Commit.Message == "other adds h" {
			t.Errorf("Log followed second_parent into %q, should only follow parent", e.Commit.Message)
		}
	}
	if len(entries) != 4 {
		t.Errorf("Log returned %d entries, want 4 (merge, current modifies g, base, initial)", len(entries))
	}
}

func TestStatus_DeletedAndUntrackedAndRemoved(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "tracked.txt", "one")
	writeFile(t, r, "gone.txt", "two")
	if err := r.Add("tracked.txt"); err != nil {
		t.Fatalf("Add tracked.txt: %v", err)
	}
	if err := r.Add("gone.txt"); err != nil {
		t.Fatalf("Add gone.txt: %v", err)
	}
	if _, err := r.Commit("base"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := r.Remove("gone.txt"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	writeFile(t, r, "extra.txt", "three")

	st, err := r.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if len(st.RemovedFiles) != 1 || st.RemovedFiles[0] != "gone.txt" {
		t.Errorf("RemovedFiles = %v, want [gone.txt]", st.RemovedFiles)
	}
	foundUntracked := false
	for _, f := range st.UntrackedFiles {
		if f == "extra.txt" {
			foundUntracked = true
		}
	}
	if !foundUntracked {
		t.Errorf("UntrackedFiles = %v, want to include extra.txt", st.UntrackedFiles)
	}
	for _, m := range st.ModificationsNotStaged {
		if m == "gone.txt (deleted)" {
			t.Errorf("gone.txt shouldn't show as a deleted modification once staged for removal, got %v", st.ModificationsNotStaged)
		}
	}
}

func TestStatus_StagedFileShowsUnderStagedNotModifications(t *testing.T) {
	r := newTestRepo(t)
	writeFile(t, r, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	st, err := r.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(st.StagedFiles) != 1 || st.StagedFiles[0] != "a.txt" {
		t.Errorf("StagedFiles = %v, want [a.txt]", st.StagedFiles)
	}
	for _, m := range st.ModificationsNotStaged {
		if m == "a.txt (modified)" || m == "a.txt (deleted)" {
			t.Errorf("a.txt freshly staged should not appear in ModificationsNotStaged, got %v", st.ModificationsNotStaged)
		}
	}
}
