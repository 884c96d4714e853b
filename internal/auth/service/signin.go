package service

import (
	"context"
	"errors"
	"strconv"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
	"lawgate/internal/platform/middleware"
	dErrors "lawgate/pkg/domain-errors"
)

// errInvalidCredentials is deliberately identical for unknown email and wrong
// password so responses don't reveal whether an account exists.
func errInvalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
}

// SignIn verifies credentials and approval status, then issues a bearer token.
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.TokenResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.countAuthFailure()
		if errors.Is(err, store.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		s.logger.ErrorContext(ctx, "sign-in lookup failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "sign-in failed")
	}

	if !s.hasher.Check(req.Password, user.PasswordDigest) {
		s.countAuthFailure()
		return nil, errInvalidCredentials()
	}

	if user.Status != models.StatusApproved {
		s.countAuthFailure()
		return nil, dErrors.New(dErrors.CodeUnauthorized, "account pending approval")
	}

	token, err := s.jwt.GenerateAccessToken(strconv.FormatInt(user.ID, 10), user.Email)
	if err != nil {
		s.logger.ErrorContext(ctx, "token generation failed",
			"error", err,
			"user_id", user.ID,
			"request_id", middleware.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "sign-in failed")
	}

	if s.metrics != nil {
		s.metrics.SignIns.Inc()
	}
	return &models.TokenResult{AccessToken: token}, nil
}

func (s *Service) countAuthFailure() {
	if s.metrics != nil {
		s.metrics.AuthFailures.Inc()
	}
}
