package blob

import (
	"context"

	"lawgate/internal/platform/supabase"
)

// SupabaseStore stores license documents in a single backend storage bucket.
type SupabaseStore struct {
	client *supabase.Client
	bucket string
}

func NewSupabaseStore(client *supabase.Client, bucket string) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket}
}

func (s *SupabaseStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	return s.client.Upload(ctx, s.bucket, key, data, contentType)
}

func (s *SupabaseStore) Remove(ctx context.Context, key string) error {
	return s.client.Remove(ctx, s.bucket, key)
}
