package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/localization-service/config"
	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/domain/model"
	"github.com/guttosm/localization-service/internal/repository"
)

// TokenService issues and verifies JWT access/refresh token pairs. Refresh
// tokens are persisted so they can be rotated and revoked; access tokens are
// stateless except for an explicit blacklist.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error)
	ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	ValidateRefreshToken(tokenString string) (*dto.Claims, error)
	InvalidateAccessToken(ctx context.Context, tokenString string) error
	InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error
	DeleteRefreshToken(ctx context.Context, tokenString string) error
	FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error)
}

// TokenConfig holds the signing keys and lifetimes for both token kinds.
type TokenConfig struct {
	SecretKey        string
	RefreshSecretKey string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig maps config.AuthConfig onto a TokenConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:        authConfig.JWTSecretKey,
		RefreshSecretKey: authConfig.JWTRefreshSecret,
		AccessTokenTTL:   authConfig.AccessTokenTTL,
		RefreshTokenTTL:  authConfig.RefreshTokenTTL,
	}
}

// TokenServiceImpl implements TokenService. Access and refresh tokens are
// signed with separate HS256 keys so one can never stand in for the other.
type TokenServiceImpl struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	tokenRepo  repository.TokenRepositoryInterface
}

// NewTokenService creates a token service backed by the given repository.
func NewTokenService(tokenRepo repository.TokenRepositoryInterface, cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		accessKey:  []byte(cfg.SecretKey),
		refreshKey: []byte(cfg.RefreshSecretKey),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		tokenRepo:  tokenRepo,
	}
}

// GenerateTokenPair signs a new access and refresh token for the user and
// persists the refresh token.
func (s *TokenServiceImpl) GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID.IsZero() {
		return nil, errors.New("user ID is zero, cannot create token")
	}

	access, err := s.sign(user, s.accessKey, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(user, s.refreshKey, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	record := &model.Token{
		UserID:    user.ID,
		Token:     refresh,
		Type:      "refresh",
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// ValidateAccessToken checks the blacklist before verifying the signature, so
// revoked tokens fail with ErrTokenBlacklisted even while still unexpired.
func (s *TokenServiceImpl) ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	blacklisted, err := s.tokenRepo.IsBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}
	return s.verify(tokenString, s.accessKey)
}

// ValidateRefreshToken verifies a refresh token signature and returns its claims.
func (s *TokenServiceImpl) ValidateRefreshToken(tokenString string) (*dto.Claims, error) {
	return s.verify(tokenString, s.refreshKey)
}

func (s *TokenServiceImpl) verify(tokenString string, key []byte) (*dto.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*ClaimsWithJWT)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}

// InvalidateAccessToken blacklists an access token. The blacklist entry
// carries the token's own expiry so it can be cleaned up once moot.
func (s *TokenServiceImpl) InvalidateAccessToken(ctx context.Context, tokenString string) error {
	parsed, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		return s.accessKey, nil
	})
	if err != nil {
		return err
	}

	claims, ok := parsed.Claims.(*ClaimsWithJWT)
	if !ok {
		return ErrInvalidToken
	}

	expiresAt := time.Now().Add(s.accessTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.tokenRepo.Create(ctx, &model.Token{
		UserID:    claims.UserID,
		Token:     tokenString,
		Type:      "blacklist",
		ExpiresAt: expiresAt,
	})
}

// InvalidateUserTokens removes every stored refresh token for the user.
func (s *TokenServiceImpl) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	return s.tokenRepo.DeleteByUserID(ctx, userID, "refresh")
}

// DeleteRefreshToken removes one stored refresh token.
func (s *TokenServiceImpl) DeleteRefreshToken(ctx context.Context, tokenString string) error {
	return s.tokenRepo.DeleteByToken(ctx, tokenString)
}

// FindRefreshToken looks up a stored refresh token by its string value.
func (s *TokenServiceImpl) FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error) {
	return s.tokenRepo.FindByToken(ctx, tokenString)
}

func (s *TokenServiceImpl) sign(user *model.User, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
			Name:     user.Name,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
