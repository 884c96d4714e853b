package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/store"
	dErrors "lawgate/pkg/domain-errors"
)

func (s *ServiceSuite) TestProfileHappyPath() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&models.User{
		ID:       7,
		Email:    "a@x.com",
		Name:     "Jane Roe",
		Nickname: "jroe",
		Phone:    "010-1234-5678",
		Status:   models.StatusApproved,
	}, nil)

	view, err := s.service.Profile(ctx, 7)
	s.Require().NoError(err)
	s.Equal(int64(7), view.ID)
	s.Equal("a@x.com", view.Email)
	s.Equal(models.StatusApproved, view.Status)
}

func (s *ServiceSuite) TestProfileViewNeverCarriesDigest() {
	ctx := context.Background()

	// Even if the store leaks the digest column, the view must not.
	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&models.User{
		ID:             7,
		Email:          "a@x.com",
		PasswordDigest: "$2a$10$digest",
	}, nil)

	view, err := s.service.Profile(ctx, 7)
	s.Require().NoError(err)
	s.NotContains(asJSON(s, view), "digest")
	s.NotContains(asJSON(s, view), "password")
}

func (s *ServiceSuite) TestProfileNotFound() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, store.ErrNotFound)

	view, err := s.service.Profile(ctx, 99)
	s.Nil(view)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestProfileBackendError() {
	ctx := context.Background()

	s.mockUsers.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, errors.New("timeout"))

	view, err := s.service.Profile(ctx, 7)
	s.Nil(view)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
