package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safevoice/report-service/internal/auth"
	"github.com/safevoice/report-service/internal/config"
	"github.com/safevoice/report-service/internal/domain"
	"github.com/safevoice/report-service/internal/repository"
	"github.com/safevoice/report-service/pkg/util/errorutil"
)

const minPasswordLength = 8

// AuthService coordinates registration, login, and profile flows. It is
// the narrow identity surface the domain core depends on; everything
// else about identity (email confirmation, resets) is out of scope.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	cache      *auth.PrincipalCache
	bcryptCost int
}

// NewAuthService builds the service. The cache may be nil.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, cache *auth.PrincipalCache) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		cache:      cache,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account with the reporter role. Helper status
// and verification are granted administratively, never self-assigned.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, time.Time, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, "", time.Time{}, errorutil.NewValidationError("username", "must not be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", time.Time{}, errorutil.NewValidationError("email", "must be a valid address")
	}
	if len(password) < minPasswordLength {
		return nil, "", time.Time{}, errorutil.NewValidationError("password", "must be at least 8 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, errorutil.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, storageError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Verified:     false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, storageError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates an account and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, errorutil.NewUnauthenticated("invalid credentials")
		}
		return nil, "", time.Time{}, storageError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errorutil.NewUnauthenticated("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// UpdateProfile changes the display name of the calling account.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errorutil.NewValidationError("username", "must not be empty")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("user", userID)
		}
		return nil, storageError(err)
	}
	user.Username = username
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errorutil.NewNotFound("user", userID)
		}
		return nil, storageError(err)
	}
	s.cache.Invalidate(ctx, user.ID)
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
