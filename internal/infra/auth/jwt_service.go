// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vms/config"
	"vms/internal/domain/service"
)

const (
	defaultAccessTTL  = time.Minute * 15
	defaultRefreshTTL = time.Hour * 24 * 7
	defaultResetTTL   = time.Minute * 10
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	resetSecret   string        // Secret key for signing password reset tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	resetTTL      time.Duration // Time-to-live for reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	resetSecret := cfg.SecretKey.Reset
	if resetSecret == "" {
		// Reset tokens fall back to the refresh secret; the type claim keeps
		// the token classes apart.
		resetSecret = cfg.SecretKey.Refresh
	}

	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		resetSecret:   resetSecret,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		resetTTL:      defaultResetTTL,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			svc.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return svc, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, role, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, role, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the validity of a token string. Access and refresh
// tokens are signed with different secrets; both are tried so the caller can
// dispatch on the type claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parseToken(tokenString, s.accessSecret)
	if err == nil {
		return claims, nil
	}

	return s.parseToken(tokenString, s.refreshSecret)
}

// GenerateResetToken creates a short-lived token authorizing a password reset.
func (s *jwtService) GenerateResetToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"iat":  now.Unix(),
		"exp":  now.Add(s.resetTTL).Unix(),
		"type": "reset",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.resetSecret))
}

// ValidateResetToken checks a reset token and returns the email it was issued for.
func (s *jwtService) ValidateResetToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.resetSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid reset token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || mapClaims["type"] != "reset" {
		return "", errors.New("not a reset token")
	}

	email, ok := mapClaims["sub"].(string)
	if !ok || email == "" {
		return "", errors.New("reset token missing subject")
	}

	return email, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, role string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),            // Subject (who the token is for)
		"iat":  now.Unix(),                 // Issued At
		"exp":  now.Add(ttl).Unix(),        // Expiration Time
		"type": tokenType,                  // Type of token (access or refresh)
		"role": role,                       // Role driving the capability policy
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// parseToken validates a token against a secret and maps its claims.
func (s *jwtService) parseToken(tokenString, secret string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims format")
	}

	subject, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.New("token subject is not a user ID")
	}

	claims := &service.Claims{UserID: userID}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if tokenType, ok := mapClaims["type"].(string); ok {
		claims.Type = tokenType
	}

	return claims, nil
}
