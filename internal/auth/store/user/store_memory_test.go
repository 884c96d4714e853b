package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	newUser := func() *models.User {
		return &models.User{
			Email:          "a@x.com",
			PasswordDigest: "$2a$10$digest",
			Name:           "Jane Roe",
			Nickname:       "jroe",
			Phone:          "010-1234-5678",
			Status:         models.StatusPending,
		}
	}

	t.Run("create assigns an id", func(t *testing.T) {
		s := NewInMemoryStore()
		created, err := s.Create(ctx, newUser())
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})

	t.Run("create rejects duplicate email", func(t *testing.T) {
		s := NewInMemoryStore()
		_, err := s.Create(ctx, newUser())
		require.NoError(t, err)

		_, err = s.Create(ctx, newUser())
		assert.ErrorIs(t, err, store.ErrDuplicate)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("find by email returns the digest", func(t *testing.T) {
		s := NewInMemoryStore()
		_, err := s.Create(ctx, newUser())
		require.NoError(t, err)

		found, err := s.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$digest", found.PasswordDigest)
	})

	t.Run("find by id omits the digest", func(t *testing.T) {
		s := NewInMemoryStore()
		created, err := s.Create(ctx, newUser())
		require.NoError(t, err)

		found, err := s.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, found.PasswordDigest)
		assert.Equal(t, "a@x.com", found.Email)
	})

	t.Run("missing rows map to ErrNotFound", func(t *testing.T) {
		s := NewInMemoryStore()
		_, err := s.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.FindByID(ctx, 99)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		s := NewInMemoryStore()
		created, err := s.Create(ctx, newUser())
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, created.ID))
		assert.Equal(t, 0, s.Count())
	})
}
