package license

import (
	"context"
	"fmt"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
	"lawgate/internal/platform/supabase"
)

const table = "lawyer_licenses"

// SupabaseStore persists license rows in the hosted backend.
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) Create(ctx context.Context, lic *models.LawyerLicense) error {
	if err := s.client.Insert(ctx, table, lic, nil); err != nil {
		if supabase.IsConflict(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("create license: %w", err)
	}
	return nil
}
