package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
	dErrors "lawgate/pkg/domain-errors"
)

func approvedUser() *models.User {
	return &models.User{
		ID:             7,
		Email:          "a@x.com",
		PasswordDigest: "$2a$10$digest",
		Name:           "Jane Roe",
		Status:         models.StatusApproved,
	}
}

func (s *ServiceSuite) TestSignInHappyPath() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(approvedUser(), nil)
	s.mockHasher.EXPECT().Check("password1", "$2a$10$digest").Return(true)
	s.mockJWT.EXPECT().GenerateAccessToken("7", "a@x.com").Return("signed-token", nil)

	result, err := s.service.SignIn(ctx, &models.SignInRequest{Email: "a@x.com", Password: "password1"})
	s.Require().NoError(err)
	s.Equal("signed-token", result.AccessToken)
}

func (s *ServiceSuite) TestSignInUnknownEmailAndWrongPasswordAreIndistinguishable() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "nobody@x.com").Return(nil, store.ErrNotFound)
	_, errUnknown := s.service.SignIn(ctx, &models.SignInRequest{Email: "nobody@x.com", Password: "password1"})

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(approvedUser(), nil)
	s.mockHasher.EXPECT().Check("wrong-password", "$2a$10$digest").Return(false)
	_, errWrong := s.service.SignIn(ctx, &models.SignInRequest{Email: "a@x.com", Password: "wrong-password"})

	s.Require().Error(errUnknown)
	s.Require().Error(errWrong)
	s.Equal(errUnknown.Error(), errWrong.Error())
	s.True(dErrors.HasCode(errUnknown, dErrors.CodeUnauthorized))
	s.True(dErrors.HasCode(errWrong, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestSignInPendingAccountNeverGetsToken() {
	ctx := context.Background()
	pending := approvedUser()
	pending.Status = models.StatusPending

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(pending, nil)
	s.mockHasher.EXPECT().Check("password1", "$2a$10$digest").Return(true)
	// No GenerateAccessToken expectation: issuing one would fail the test.

	result, err := s.service.SignIn(ctx, &models.SignInRequest{Email: "a@x.com", Password: "password1"})
	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Contains(err.Error(), "pending")
}

func (s *ServiceSuite) TestSignInRejectedAccount() {
	ctx := context.Background()
	rejected := approvedUser()
	rejected.Status = models.StatusRejected

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(rejected, nil)
	s.mockHasher.EXPECT().Check("password1", "$2a$10$digest").Return(true)

	result, err := s.service.SignIn(ctx, &models.SignInRequest{Email: "a@x.com", Password: "password1"})
	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestSignInBackendError() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("connection reset"))

	result, err := s.service.SignIn(ctx, &models.SignInRequest{Email: "a@x.com", Password: "password1"})
	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.NotContains(err.Error(), "connection reset")
}

func (s *ServiceSuite) TestSignInTokenGenerationError() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(approvedUser(), nil)
	s.mockHasher.EXPECT().Check("password1", "$2a$10$digest").Return(true)
	s.mockJWT.EXPECT().GenerateAccessToken("7", "a@x.com").Return("", errors.New("bad key"))

	result, err := s.service.SignIn(ctx, &models.SignInRequest{Email: "a@x.com", Password: "password1"})
	s.Nil(result)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
