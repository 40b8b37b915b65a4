package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the minimum length of the HMAC signing secret.
const MinSecretLength = 32

// Common errors for token operations.
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")
	ErrWrongIssuer         = errors.New("token issued by another service")
	ErrTokenSigningFailed  = errors.New("failed to sign token")
	ErrInvalidSecretLength = errors.New("token secret must be at least 32 characters")
)

// TokenConfig holds configuration for token generation.
type TokenConfig struct {
	// Secret is the HMAC signing key. Must be at least MinSecretLength characters.
	Secret string

	// Issuer is the token issuer claim. Default: "finfo"
	Issuer string

	// TokenDuration is the lifetime of minted tokens. Default: 7 days.
	TokenDuration time.Duration
}

// TokenService handles bearer-token generation and validation.
type TokenService struct {
	config TokenConfig
}

// Token is a minted bearer token together with its presentation metadata.
type Token struct {
	// Token is the signed JWT string.
	Token string `json:"token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// ExpiresAt is the token expiration time.
	ExpiresAt time.Time `json:"expires_at"`
}

// NewTokenService creates a new token service with the given configuration.
func NewTokenService(config TokenConfig) (*TokenService, error) {
	if len(config.Secret) < MinSecretLength {
		return nil, ErrInvalidSecretLength
	}

	// Apply defaults
	if config.Issuer == "" {
		config.Issuer = "finfo"
	}
	if config.TokenDuration == 0 {
		config.TokenDuration = 7 * 24 * time.Hour
	}

	return &TokenService{config: config}, nil
}

// Generate mints a new bearer token for the named client.
func (s *TokenService) Generate(name string) (*Token, error) {
	now := time.Now()
	expiry := now.Add(s.config.TokenDuration)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.config.Issuer,
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		Name: name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, ErrTokenSigningFailed
	}

	return &Token{
		Token:     signedToken,
		TokenType: "Bearer",
		ExpiresIn: int64(s.config.TokenDuration.Seconds()),
		ExpiresAt: expiry,
	}, nil
}

// Validate validates a bearer token and returns the claims.
// Returns an error if the token is invalid, expired, or issued by another service.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != s.config.Issuer {
		return nil, ErrWrongIssuer
	}

	return claims, nil
}

// GetTokenDuration returns the configured token duration.
func (s *TokenService) GetTokenDuration() time.Duration {
	return s.config.TokenDuration
}
