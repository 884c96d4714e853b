package blob

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStore keeps uploaded objects in a map for tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailNextUpload and FailNextRemove force the next call to fail,
	// for saga rollback tests.
	FailNextUpload error
	FailNextRemove error
}

// NewInMemoryStore constructs an empty in-memory blob store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{objects: make(map[string][]byte)}
}

func (s *InMemoryStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNextUpload != nil {
		err := s.FailNextUpload
		s.FailNextUpload = nil
		return err
	}
	if _, exists := s.objects[key]; exists {
		return fmt.Errorf("blob: key already exists: %s", key)
	}
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

func (s *InMemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNextRemove != nil {
		err := s.FailNextRemove
		s.FailNextRemove = nil
		return err
	}
	delete(s.objects, key)
	return nil
}

// Has reports whether an object exists under key. Test helper.
func (s *InMemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}

// Count reports how many objects are stored. Test helper.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
