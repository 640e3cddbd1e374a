package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
	"github.com/cy-rus404/sms-backend/internal/pkg/auth"
)

// TokenPair carries the tokens handed out after a successful login
type TokenPair struct {
	AccessToken           string
	RefreshToken          string
	ExpiresIn             int
	RefreshTokenExpiresIn int
}

// AuthService handles the login gate and refresh tokens
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error)
	Logout(ctx context.Context, userID int64) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userStore UserStore, tokenStore TokenStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a token pair.
// An unknown username and a wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, *TokenPair, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Debug().Str("username", username).Msg("Login attempt for unknown username")
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		s.logger.Debug().Str("username", username).Msg("Login attempt with wrong password")
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return user, pair, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The used token is revoked so each refresh token works once.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {
	userID, _, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, apperrors.ErrUserNotFound
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, nil, fmt.Errorf("error revoking used refresh token: %w", err)
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Logout revokes every refresh token of the user
func (s *authServiceImpl) Logout(ctx context.Context, userID int64) error {
	if err := s.tokenStore.RevokeAllUserTokens(ctx, userID); err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	s.logger.Info().Int64("userID", userID).Msg("User logged out")
	return nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		ExpiresIn:             expiresIn,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}
