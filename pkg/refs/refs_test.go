package refs

import (
	"testing"

	"github.com/odvcencio/gitlet/pkg/objects"
)

func TestHeadBranch_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.SetHeadBranch("main"); err != nil {
		t.Fatalf("SetHeadBranch: %v", err)
	}
	got, err := s.HeadBranch()
	if err != nil {
		t.Fatalf("HeadBranch: %v", err)
	}
	if got != "main" {
		t.Errorf("HeadBranch = %q, want %q", got, "main")
	}
}

func TestCreateBranch_RejectsDuplicate(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.CreateBranch("main", objects.Hash("aaaa")); err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	if err := s.CreateBranch("main", objects.Hash("bbbb")); err != ErrExists {
		t.Errorf("CreateBranch(duplicate) = %v, want ErrExists", err)
	}
}

func TestListBranches_Sorted(t *testing.T) {
	s := NewStore(t.TempDir())
	for _, name := range []string{"zeta", "alpha", "main"} {
		if err := s.CreateBranch(name, objects.Hash("aaaa")); err != nil {
			t.Fatalf("CreateBranch(%s): %v", name, err)
		}
	}

	got, err := s.ListBranches()
	if err != nil {
		t.Fatalf("ListBranches: %v", err)
	}
	want := []string{"alpha", "main", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("ListBranches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListBranches[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDeleteBranch_Unknown(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.DeleteBranch("ghost"); err != ErrNotFound {
		t.Errorf("DeleteBranch(unknown) = %v, want ErrNotFound", err)
	}
}
