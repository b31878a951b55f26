// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/atlas-hrms/atlas/api/config"
	"github.com/atlas-hrms/atlas/api/dao"
	"github.com/atlas-hrms/atlas/api/db"
	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

type AuthService struct {
	userDAO *dao.UserDAO
}

var _ IAuthService = &AuthService{}

func NewAuthService(userDAO *dao.UserDAO) *AuthService {
	return &AuthService{userDAO: userDAO}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Refresh  bool   `json:"refresh,omitempty"`
}

// Login verifies the credentials and mints an access/refresh token pair.
// Credential failures are indistinguishable to the caller whether the user
// is unknown or the password is wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.userDAO.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrUserNotFound) {
			return nil, atlas_errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Info("Failed login attempt", zap.String("username", username))
		return nil, atlas_errors.ErrInvalidCredentials
	}

	pair, err := s.mintTokens(user)
	if err != nil {
		logger.Error("Failed to mint tokens", zap.Error(err), zap.Uint("userID", user.ID))
		return nil, atlas_errors.ErrInternalServer
	}

	logger.Info("User logged in", zap.Uint("userID", user.ID), zap.String("username", username))
	return pair, nil
}

// Refresh exchanges a refresh token for a fresh pair. The presented refresh
// token is denylisted for its remaining lifetime, so each one is single-use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parseRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userDAO.GetUserByUsername(ctx, claims.Username)
	if err != nil {
		return nil, atlas_errors.ErrInvalidToken
	}

	if err := s.revoke(ctx, claims); err != nil {
		logger.Warn("Failed to denylist rotated refresh token", zap.Error(err), zap.String("tokenID", claims.ID))
	}

	pair, err := s.mintTokens(user)
	if err != nil {
		return nil, atlas_errors.ErrInternalServer
	}
	return pair, nil
}

// Logout denylists the presented refresh token. The access token simply ages
// out; it is short-lived.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	return s.revoke(ctx, claims)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	return s.userDAO.GetUser(ctx, userID)
}

func (s *AuthService) mintTokens(user *model.User) (*TokenPair, error) {
	secret := []byte(config.GetString("auth.jwtSecret"))
	accessTTL := config.GetDuration("auth.tokenTTL")
	refreshTTL := config.GetDuration("auth.refreshTokenTTL")
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   formatUserID(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
		Username: user.Username,
	})
	accessToken, err := access.SignedString(secret)
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   formatUserID(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTTL)),
		},
		Username: user.Username,
		Refresh:  true,
	})
	refreshToken, err := refresh.SignedString(secret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *AuthService) parseRefreshToken(ctx context.Context, tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, atlas_errors.ErrInvalidToken
		}
		return []byte(config.GetString("auth.jwtSecret")), nil
	})
	if err != nil || !token.Valid || !claims.Refresh {
		return nil, atlas_errors.ErrInvalidToken
	}

	denied, err := db.IsRefreshTokenDenylisted(ctx, claims.ID)
	if err != nil {
		logger.Warn("Refresh token denylist check failed", zap.Error(err))
		return nil, atlas_errors.ErrInternalServer
	}
	if denied {
		return nil, atlas_errors.ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) revoke(ctx context.Context, claims *tokenClaims) error {
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return db.DenylistRefreshToken(ctx, claims.ID, remaining)
}
