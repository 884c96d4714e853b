package license

import (
	"context"
	"sync"

	"lawgate/internal/auth/models"
)

// InMemoryStore stores license rows in memory for tests.
type InMemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	licenses map[int64]*models.LawyerLicense

	// FailNext forces the next Create to fail, for saga rollback tests.
	FailNext error
}

// NewInMemoryStore constructs an empty in-memory license store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{licenses: make(map[int64]*models.LawyerLicense)}
}

func (s *InMemoryStore) Create(_ context.Context, lic *models.LawyerLicense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNext != nil {
		err := s.FailNext
		s.FailNext = nil
		return err
	}
	s.nextID++
	stored := *lic
	stored.ID = s.nextID
	s.licenses[stored.ID] = &stored
	return nil
}

// FindByUser returns the license row referencing userID, or nil.
// Test helper for consistency assertions.
func (s *InMemoryStore) FindByUser(userID int64) *models.LawyerLicense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lic := range s.licenses {
		if lic.UserID == userID {
			copy := *lic
			return &copy
		}
	}
	return nil
}

// Count reports how many license rows exist. Test helper.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.licenses)
}
