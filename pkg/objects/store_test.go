package objects

import (
	"testing"
)

func TestPutGetBlob_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	id, err := s.PutBlob([]byte("hello\n"))
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}
	if !s.HasBlob(id) {
		t.Fatalf("HasBlob(%s) = false, want true", id)
	}
	got, err := s.GetBlob(id)
	if err != nil {
		t.Fatalf("GetBlob: %v", err)
	}
	if string(got) != "hello\n" {
		t.Errorf("GetBlob = %q, want %q", got, "hello\n")
	}
}

func TestPutBlob_Idempotent(t *testing.T) {
	s := NewStore(t.TempDir())

	id1, err := s.PutBlob([]byte("same content"))
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}
	id2, err := s.PutBlob([]byte("same content"))
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}
	if id1 != id2 {
		t.Errorf("ids differ: %s vs %s", id1, id2)
	}
}

func TestGetBlob_NotFound(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.GetBlob(Hash("deadbeef")); err != ErrNotFound {
		t.Errorf("GetBlob(unknown) = %v, want ErrNotFound", err)
	}
}

func TestInitialCommit_IdIsReproducible(t *testing.T) {
	c1 := InitialCommit()
	c2 := InitialCommit()
	if ComputeID(c1) != ComputeID(c2) {
		t.Errorf("initial commit ids differ: %s vs %s", ComputeID(c1), ComputeID(c2))
	}
}

func TestCommit_SerializeDeserialize_RoundTrip(t *testing.T) {
	c := &Commit{
		Message:      "add stuff",
		Timestamp:    EpochOrigin,
		Parent:       Hash("aaaa"),
		SecondParent: Hash("bbbb"),
		Files:        map[string]Hash{"b.txt": "2222", "a.txt": "1111"},
	}
	id := ComputeID(c)

	got, err := Deserialize(Serialize(c))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if ComputeID(got) != id {
		t.Errorf("round-tripped commit id = %s, want %s", ComputeID(got), id)
	}
	if got.Message != c.Message || got.Parent != c.Parent || got.SecondParent != c.SecondParent {
		t.Errorf("round-tripped commit = %+v, want %+v", got, c)
	}
	if len(got.Files) != 2 || got.Files["a.txt"] != "1111" || got.Files["b.txt"] != "2222" {
		t.Errorf("round-tripped files = %+v", got.Files)
	}
}

func TestPutGetCommit_RoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	c := &Commit{Message: "m", Timestamp: EpochOrigin, Files: map[string]Hash{}}

	id, err := s.PutCommit(c)
	if err != nil {
		t.Fatalf("PutCommit: %v", err)
	}

	got, err := s.GetCommit(id)
	if err != nil {
		t.Fatalf("GetCommit: %v", err)
	}
	if got.ID != id || got.Message != "m" {
		t.Errorf("GetCommit = %+v", got)
	}
}

func TestResolvePrefix(t *testing.T) {
	s := NewStore(t.TempDir())
	c := &Commit{Message: "m", Timestamp: EpochOrigin, Files: map[string]Hash{}}
	id, err := s.PutCommit(c)
	if err != nil {
		t.Fatalf("PutCommit: %v", err)
	}

	resolved, err := s.ResolvePrefix(string(id)[:6])
	if err != nil {
		t.Fatalf("ResolvePrefix: %v", err)
	}
	if resolved != id {
		t.Errorf("ResolvePrefix = %s, want %s", resolved, id)
	}

	none, err := s.ResolvePrefix("ffffffffff")
	if err != nil {
		t.Fatalf("ResolvePrefix: %v", err)
	}
	if none != "" {
		t.Errorf("ResolvePrefix(unknown) = %s, want empty", none)
	}
}
