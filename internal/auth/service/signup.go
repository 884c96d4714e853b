package service

import (
	"context"
	"fmt"
	"time"

	"lawgate/internal/auth/models"
	"lawgate/internal/platform/middleware"
	dErrors "lawgate/pkg/domain-errors"
)

const signUpMessage = "Registration complete. Please wait for administrator approval."

// errRegistrationFailed is the generic error surfaced for any backend write
// failure during sign-up. Backend diagnostics stay in the logs.
func errRegistrationFailed() error {
	return dErrors.New(dErrors.CodeRegistration, "registration failed")
}

// SignUp registers a lawyer account. The backend exposes no multi-table
// transaction, so the three side effects (user row, blob, license row) run as
// ordered forward steps with reverse-order compensating actions on failure:
//
//	1. validate file        (no side effect)
//	2. hash password        (no side effect)
//	3. insert user row      (on later failure: delete)
//	4. upload license blob  (on later failure: remove)
//	5. insert license row
//
// Afterward either all three artifacts exist, mutually consistent, or none
// do. A compensation that itself fails is logged as an unresolved
// inconsistency and counted; the original error still reaches the caller.
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest, file *models.LicenseFile) (*models.SignUpResult, error) {
	if err := ValidateLicenseFile(file); err != nil {
		s.countSignUpFailure("validate_file")
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.countSignUpFailure("hash_password")
		s.logger.ErrorContext(ctx, "sign-up password hash failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "registration failed")
	}

	created, err := s.users.Create(ctx, &models.User{
		Email:          req.Email,
		PasswordDigest: digest,
		Name:           req.Name,
		Nickname:       req.Nickname,
		Phone:          req.Phone,
		Status:         models.StatusPending,
	})
	if err != nil {
		// Nothing was created yet, including the duplicate-email race:
		// the loser of that race stops here and compensates nothing.
		s.countSignUpFailure("insert_user")
		s.logger.WarnContext(ctx, "sign-up user insert failed",
			"error", err,
			"email", req.Email,
			"request_id", middleware.GetRequestID(ctx),
		)
		return nil, errRegistrationFailed()
	}

	key := licenseKey(created.ID, s.now(), file.ContentType)
	if err := s.files.Upload(ctx, key, file.Content, file.ContentType); err != nil {
		s.countSignUpFailure("upload_file")
		s.logger.WarnContext(ctx, "sign-up file upload failed",
			"error", err,
			"user_id", created.ID,
			"file_path", key,
			"request_id", middleware.GetRequestID(ctx),
		)
		s.compensate(ctx, created.ID, "")
		return nil, errRegistrationFailed()
	}

	if err := s.licenses.Create(ctx, &models.LawyerLicense{
		UserID:   created.ID,
		FilePath: key,
		Status:   models.StatusPending,
	}); err != nil {
		s.countSignUpFailure("insert_license")
		s.logger.WarnContext(ctx, "sign-up license insert failed",
			"error", err,
			"user_id", created.ID,
			"file_path", key,
			"request_id", middleware.GetRequestID(ctx),
		)
		s.compensate(ctx, created.ID, key)
		return nil, errRegistrationFailed()
	}

	if s.metrics != nil {
		s.metrics.SignUps.Inc()
	}
	s.logger.InfoContext(ctx, "lawyer registration completed",
		"user_id", created.ID,
		"request_id", middleware.GetRequestID(ctx),
	)
	return &models.SignUpResult{Message: signUpMessage}, nil
}

// compensate undoes completed forward steps in strict reverse order: the
// uploaded blob (when blobKey is set) before the user row. Failures are not
// retried; they are logged with enough identifiers for manual reconciliation
// and never mask the original saga error.
func (s *Service) compensate(ctx context.Context, userID int64, blobKey string) {
	if s.metrics != nil {
		s.metrics.SagaRollbacks.Inc()
	}

	if blobKey != "" {
		if err := s.files.Remove(ctx, blobKey); err != nil {
			s.reportCompensationFailure(ctx, "remove uploaded file", err, userID, blobKey)
		}
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		s.reportCompensationFailure(ctx, "delete user row", err, userID, blobKey)
	}
}

func (s *Service) reportCompensationFailure(ctx context.Context, action string, err error, userID int64, blobKey string) {
	if s.metrics != nil {
		s.metrics.SagaRollbackFailures.Inc()
	}
	s.logger.ErrorContext(ctx, "sign-up rollback left an unresolved inconsistency",
		"action", action,
		"error", err,
		"user_id", userID,
		"file_path", blobKey,
		"request_id", middleware.GetRequestID(ctx),
	)
}

func (s *Service) countSignUpFailure(step string) {
	if s.metrics != nil {
		s.metrics.SignUpFailures.WithLabelValues(step).Inc()
	}
}

// licenseKey namespaces the blob under the new user's identifier plus the
// current time. Collision avoidance, not security.
func licenseKey(userID int64, now time.Time, contentType string) string {
	return fmt.Sprintf("licenses/%d/%d%s", userID, now.UnixNano(), allowedContentTypes[contentType])
}
