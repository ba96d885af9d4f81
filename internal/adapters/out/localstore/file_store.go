// internal/adapters/out/localstore/file_store.go
package localstore

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is the durable Store: one JSON object file, read once at open,
// rewritten in full on every Set (write-through, no batching).
//
// A missing or unreadable file opens as an empty store; the damage is logged
// and never surfaces to callers.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	p := filepath.Clean(path)
	if p == "" || p == "." {
		return nil, errors.New("localstore: file path is empty")
	}

	s := &FileStore{
		path: p,
		data: map[string]string{},
	}

	raw, err := os.ReadFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[localstore] WARN: read %s failed: %v (starting empty)", p, err)
		}
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("[localstore] WARN: %s is not valid JSON: %v (starting empty)", p, err)
		s.data = map[string]string{}
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	if s == nil {
		return errors.New("localstore: file store is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// write temp + rename so a crash mid-write never truncates the store
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
