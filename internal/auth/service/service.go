package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks UserStore,LicenseStore,FileStore,TokenIssuer,PasswordHasher

import (
	"context"
	"log/slog"
	"time"

	"lawgate/internal/auth/models"
	"lawgate/internal/platform/metrics"
)

// UserStore defines the persistence interface for user rows.
// Error Contract: Find methods return store.ErrNotFound when the entity
// doesn't exist; Create returns store.ErrDuplicate on uniqueness violations.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// LicenseStore defines the persistence interface for lawyer license rows.
type LicenseStore interface {
	Create(ctx context.Context, lic *models.LawyerLicense) error
}

// FileStore defines the blob storage interface for license documents.
// Upload must fail on key collision rather than overwrite.
type FileStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	GenerateAccessToken(userID, email string) (string, error)
}

// PasswordHasher turns plaintext passwords into one-way digests and verifies
// them by comparison, never by reversal.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, digest string) bool
}

// Service implements the three gateway operations: register, sign in, and
// profile lookup. All persistence goes through the injected stores; the
// service holds no mutable state of its own.
type Service struct {
	users    UserStore
	licenses LicenseStore
	files    FileStore
	jwt      TokenIssuer
	hasher   PasswordHasher
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithHasher(h PasswordHasher) Option {
	return func(s *Service) {
		s.hasher = h
	}
}

// WithClock overrides the time source used for blob key generation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(users UserStore, licenses LicenseStore, files FileStore, jwt TokenIssuer, opts ...Option) *Service {
	svc := &Service{
		users:    users,
		licenses: licenses,
		files:    files,
		jwt:      jwt,
		hasher:   NewBcryptHasher(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}
