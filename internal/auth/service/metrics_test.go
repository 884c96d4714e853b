package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"lawgate/internal/auth/models"
	"lawgate/internal/platform/metrics"
)

// meteredService builds a Service around the suite's mocks with counters
// backed by a private registry, so assertions never bleed between tests.
func (s *ServiceSuite) meteredService() (*Service, *metrics.Metrics) {
	m := metrics.NewWith(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(
		s.mockUsers,
		s.mockLicenses,
		s.mockFiles,
		s.mockJWT,
		WithLogger(logger),
		WithHasher(s.mockHasher),
		WithClock(func() time.Time { return fixedNow }),
		WithMetrics(m),
	)
	return svc, m
}

func (s *ServiceSuite) TestSignUpSuccessIncrementsSignUps() {
	svc, m := s.meteredService()
	file := pngFile(1024)

	s.mockHasher.EXPECT().Hash("password1").Return("$2a$10$digest", nil)
	s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) (*models.User, error) {
			created := *user
			created.ID = 7
			return &created, nil
		})
	s.mockFiles.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockLicenses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SignUp(context.Background(), validSignUp(), file)
	s.Require().NoError(err)

	s.Equal(float64(1), testutil.ToFloat64(m.SignUps))
	s.Equal(float64(0), testutil.ToFloat64(m.SagaRollbacks))
	s.Equal(0, testutil.CollectAndCount(m.SignUpFailures))
}

func (s *ServiceSuite) TestSignUpUploadFailureCountsStepAndRollback() {
	svc, m := s.meteredService()
	file := pngFile(1024)

	s.mockHasher.EXPECT().Hash("password1").Return("$2a$10$digest", nil)
	s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) (*models.User, error) {
			created := *user
			created.ID = 7
			return &created, nil
		})
	s.mockFiles.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("storage unavailable"))
	s.mockUsers.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	_, err := svc.SignUp(context.Background(), validSignUp(), file)
	s.Require().Error(err)

	s.Equal(float64(0), testutil.ToFloat64(m.SignUps))
	s.Equal(float64(1), testutil.ToFloat64(m.SignUpFailures.WithLabelValues("upload_file")))
	s.Equal(float64(1), testutil.ToFloat64(m.SagaRollbacks))
	s.Equal(float64(0), testutil.ToFloat64(m.SagaRollbackFailures))
}

func (s *ServiceSuite) TestSignUpRollbackFailuresAreCounted() {
	svc, m := s.meteredService()
	file := pngFile(1024)
	key := s.expectedKey(7, ".png")

	s.mockHasher.EXPECT().Hash("password1").Return("$2a$10$digest", nil)
	s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *models.User) (*models.User, error) {
			created := *user
			created.ID = 7
			return &created, nil
		})
	s.mockFiles.EXPECT().Upload(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(nil)
	s.mockLicenses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert rejected"))

	// Both compensations fail: each leaves its own inconsistency.
	s.mockFiles.EXPECT().Remove(gomock.Any(), key).Return(errors.New("remove failed"))
	s.mockUsers.EXPECT().Delete(gomock.Any(), int64(7)).Return(errors.New("delete failed"))

	_, err := svc.SignUp(context.Background(), validSignUp(), file)
	s.Require().Error(err)

	s.Equal(float64(1), testutil.ToFloat64(m.SignUpFailures.WithLabelValues("insert_license")))
	s.Equal(float64(1), testutil.ToFloat64(m.SagaRollbacks))
	s.Equal(float64(2), testutil.ToFloat64(m.SagaRollbackFailures))
}

func (s *ServiceSuite) TestSignInSuccessAndFailureCounters() {
	svc, m := s.meteredService()
	approved := &models.User{
		ID:             7,
		Email:          "a@x.com",
		PasswordDigest: "$2a$10$digest",
		Status:         models.StatusApproved,
	}

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(approved, nil).Times(2)
	s.mockHasher.EXPECT().Check("password1", "$2a$10$digest").Return(true)
	s.mockJWT.EXPECT().GenerateAccessToken("7", "a@x.com").Return("token", nil)
	s.mockHasher.EXPECT().Check("wrong", "$2a$10$digest").Return(false)

	_, err := svc.SignIn(context.Background(), &models.SignInRequest{Email: "a@x.com", Password: "password1"})
	s.Require().NoError(err)
	_, err = svc.SignIn(context.Background(), &models.SignInRequest{Email: "a@x.com", Password: "wrong"})
	s.Require().Error(err)

	s.Equal(float64(1), testutil.ToFloat64(m.SignIns))
	s.Equal(float64(1), testutil.ToFloat64(m.AuthFailures))
}
