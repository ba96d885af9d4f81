package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if err := s.Set("bag", `[{"id":"A"}]`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// simulated reload: a fresh store over the same file
	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore (reload) returned error: %v", err)
	}
	v, ok := s2.Get("bag")
	if !ok || v != `[{"id":"A"}]` {
		t.Fatalf("round-trip mismatch: got %q ok=%v", v, ok)
	}
}

func TestFileStoreAbsentKey(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "storage.json"))
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("absent key reported ok=true")
	}
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("corrupt file must not fail open: %v", err)
	}
	if _, ok := s.Get("bag"); ok {
		t.Fatal("corrupt store should be empty")
	}

	// and it must be writable again
	if err := s.Set("bag", "[]"); err != nil {
		t.Fatalf("Set after corrupt open: %v", err)
	}
}
