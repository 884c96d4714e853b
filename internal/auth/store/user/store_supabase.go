package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
	"lawgate/internal/platform/supabase"
)

const table = "users"

// profileColumns excludes the password digest so it never leaves the store
// layer on profile reads.
const profileColumns = "id,email,name,nickname,phone,status"

// SupabaseStore persists users in the hosted backend's users table.
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

// Create inserts the user and returns the stored row including the
// backend-generated identifier.
func (s *SupabaseStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	if err := s.client.Insert(ctx, table, user, &created); err != nil {
		if supabase.IsConflict(err) {
			return nil, store.ErrDuplicate
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

func (s *SupabaseStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.client.SelectSingle(ctx, table, "*", supabase.Filters{"email": email}, &user)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns the user without its password digest.
func (s *SupabaseStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.client.SelectSingle(ctx, table, profileColumns, supabase.Filters{"id": strconv.FormatInt(id, 10)}, &user)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *SupabaseStore) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, table, supabase.Filters{"id": strconv.FormatInt(id, 10)}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
