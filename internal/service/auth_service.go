package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-booking/internal/auth"
	"github.com/spec-kit/restaurant-booking/internal/config"
	"github.com/spec-kit/restaurant-booking/internal/domain"
	"github.com/spec-kit/restaurant-booking/internal/repository"
	apperrors "github.com/spec-kit/restaurant-booking/pkg/util"
)

// TokenPair bundles the credentials returned by register/login/refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// AuthService coordinates registration, login and token refresh flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTokenTTLMinutes, cfg.RefreshTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and issues its first token pair.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, TokenPair, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, TokenPair{}, apperrors.NewConflict("USER_EXISTS", "a user with this email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, TokenPair{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, TokenPair{}, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         domain.UserRoleStandard,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.tokenPair(user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

// Login authenticates an account by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, TokenPair{}, apperrors.NewUnauthorizedCode("INVALID_CREDENTIALS", "invalid email or password")
		}
		return nil, TokenPair{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, TokenPair{}, apperrors.NewUnauthorizedCode("INVALID_CREDENTIALS", "invalid email or password")
	}

	pair, err := s.tokenPair(user.ID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token and issues a fresh pair. The subject must
// still exist; a token for a deleted account is rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokenMgr.Parse(refreshToken, auth.TokenKindRefresh)
	if err != nil {
		return TokenPair{}, apperrors.NewUnauthorizedCode("INVALID_REFRESH_TOKEN", "invalid or expired refresh token")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenPair{}, apperrors.NewUnauthorized("user not found")
		}
		return TokenPair{}, err
	}

	return s.tokenPair(user.ID)
}

// Logout is a no-op: tokens are stateless and stay valid until expiry.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// UpdateProfile changes the mutable profile fields (name, phone).
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name string, phone *string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("NOT_FOUND", "user not found")
		}
		return nil, err
	}

	user.Name = name
	if phone != nil {
		user.Phone = phone
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) tokenPair(userID string) (TokenPair, error) {
	access, refresh, err := s.tokenMgr.GeneratePair(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
