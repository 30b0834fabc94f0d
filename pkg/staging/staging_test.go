package staging

import (
	"testing"

	"github.com/odvcencio/gitlet/pkg/objects"
)

func TestStageAdd_ClearsRemoval(t *testing.T) {
	a := New()
	a.StageRemove("f.txt")
	a.StageAdd("f.txt", objects.Hash("aaaa"))

	if _, removed := a.Removed["f.txt"]; removed {
		t.Error("f.txt still marked removed after StageAdd")
	}
	if a.Added["f.txt"] != "aaaa" {
		t.Errorf("Added[f.txt] = %s, want aaaa", a.Added["f.txt"])
	}
}

func TestStageRemove_ClearsAddition(t *testing.T) {
	a := New()
	a.StageAdd("f.txt", objects.Hash("aaaa"))
	a.StageRemove("f.txt")

	if _, added := a.Added["f.txt"]; added {
		t.Error("f.txt still marked added after StageRemove")
	}
	if !a.Removed["f.txt"] {
		t.Error("f.txt not marked removed")
	}
}

func TestIsEmpty(t *testing.T) {
	a := New()
	if !a.IsEmpty() {
		t.Error("fresh Area should be empty")
	}
	a.StageAdd("f.txt", objects.Hash("aaaa"))
	if a.IsEmpty() {
		t.Error("Area with a pending add should not be empty")
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	a := New()
	a.StageAdd("f.txt", objects.Hash("aaaa"))
	a.StageRemove("g.txt")

	if err := s.Save(a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Added["f.txt"] != "aaaa" {
		t.Errorf("Added[f.txt] = %s, want aaaa", got.Added["f.txt"])
	}
	if !got.Removed["g.txt"] {
		t.Error("Removed[g.txt] should be true")
	}
}

func TestStore_Load_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	a, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !a.IsEmpty() {
		t.Error("Load of missing file should return an empty Area")
	}
}
