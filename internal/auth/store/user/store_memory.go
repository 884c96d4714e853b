package user

import (
	"context"
	"sync"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
)

// InMemoryStore stores users in memory for tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
}

// NewInMemoryStore constructs an empty in-memory user store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[int64]*models.User)}
}

func (s *InMemoryStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, store.ErrDuplicate
		}
	}
	s.nextID++
	stored := *user
	stored.ID = s.nextID
	s.users[stored.ID] = &stored
	copy := stored
	return &copy, nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copy := *user
	copy.PasswordDigest = ""
	return &copy, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// Count reports how many users exist. Test helper for rollback assertions.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// SetStatus flips a user's review status, standing in for the out-of-band
// admin process in tests.
func (s *InMemoryStore) SetStatus(id int64, status models.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		user.Status = status
	}
}
