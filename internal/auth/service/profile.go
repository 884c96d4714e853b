package service

import (
	"context"
	"errors"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
	dErrors "lawgate/pkg/domain-errors"
)

// Profile fetches the sanitized record for an authenticated user.
func (s *Service) Profile(ctx context.Context, userID int64) (*models.UserView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "profile lookup failed")
	}
	return user.View(), nil
}
