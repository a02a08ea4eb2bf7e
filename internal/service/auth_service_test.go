package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/safevoice/report-service/internal/config"
	"github.com/safevoice/report-service/internal/repository"
	"github.com/safevoice/report-service/pkg/util/errorutil"

	"github.com/safevoice/report-service/internal/domain"
)

type AuthServiceSuite struct {
	suite.Suite
	ctx     context.Context
	users   *repository.InMemoryUserRepository
	service *AuthService
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = repository.NewInMemoryUserRepository()
	s.service = NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            4,
	}, s.users, nil)
}

func (s *AuthServiceSuite) TestRegister() {
	s.Run("creates an unverified reporter account", func() {
		user, token, _, err := s.service.Register(s.ctx, "jane", "jane@example.com", "longenough")
		s.Require().NoError(err)
		s.Equal(domain.RoleUser, user.Role)
		s.False(user.Verified)
		s.NotEqual("longenough", user.PasswordHash)
		s.NotEmpty(token)

		claims, err := s.service.TokenManager().ParseToken(token)
		s.Require().NoError(err)
		s.Equal(user.ID, claims.SubjectID)
	})

	s.Run("rejects duplicate email", func() {
		_, _, _, err := s.service.Register(s.ctx, "jane", "dup@example.com", "longenough")
		s.Require().NoError(err)

		_, _, _, err = s.service.Register(s.ctx, "other", "dup@example.com", "longenough")
		s.True(errorutil.HasCode(err, errorutil.CodeConflict))
	})

	s.Run("validates input", func() {
		_, _, _, err := s.service.Register(s.ctx, "  ", "jane2@example.com", "longenough")
		s.True(errorutil.HasCode(err, errorutil.CodeValidationFailed))

		_, _, _, err = s.service.Register(s.ctx, "jane", "not-an-email", "longenough")
		s.True(errorutil.HasCode(err, errorutil.CodeValidationFailed))

		_, _, _, err = s.service.Register(s.ctx, "jane", "jane3@example.com", "short")
		s.True(errorutil.HasCode(err, errorutil.CodeValidationFailed))
	})
}

func (s *AuthServiceSuite) TestLogin() {
	_, _, _, err := s.service.Register(s.ctx, "jane", "jane@example.com", "longenough")
	s.Require().NoError(err)

	s.Run("valid credentials", func() {
		user, token, _, err := s.service.Login(s.ctx, "jane@example.com", "longenough")
		s.Require().NoError(err)
		s.Equal("jane", user.Username)
		s.NotEmpty(token)
	})

	s.Run("wrong password and unknown email look the same", func() {
		_, _, _, err := s.service.Login(s.ctx, "jane@example.com", "wrongpass")
		s.True(errorutil.HasCode(err, errorutil.CodeUnauthenticated))

		_, _, _, err = s.service.Login(s.ctx, "ghost@example.com", "longenough")
		s.True(errorutil.HasCode(err, errorutil.CodeUnauthenticated))
	})
}

func (s *AuthServiceSuite) TestUpdateProfile() {
	user, _, _, err := s.service.Register(s.ctx, "jane", "jane@example.com", "longenough")
	s.Require().NoError(err)

	updated, err := s.service.UpdateProfile(s.ctx, user.ID, "jane_doe")
	s.Require().NoError(err)
	s.Equal("jane_doe", updated.Username)

	stored, err := s.users.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("jane_doe", stored.Username)

	_, err = s.service.UpdateProfile(s.ctx, "missing", "name")
	s.True(errorutil.HasCode(err, errorutil.CodeNotFound))

	_, err = s.service.UpdateProfile(s.ctx, user.ID, "  ")
	s.True(errorutil.HasCode(err, errorutil.CodeValidationFailed))
}
