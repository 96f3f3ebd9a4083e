package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/middleware"
	"github.com/hisabapp/hisab/internal/platform/config"
)

// TokenService issues the application JWT after a successful Google
// sign-in. The subject is the verified email.
type TokenService struct {
	secret string
	issuer string
	expiry time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		expiry: cfg.JWTExpiryDuration,
	}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

func (s *TokenService) IssueToken(email, name, image string) (string, error) {
	now := time.Now()
	claims := middleware.SessionClaims{
		Name:  name,
		Image: image,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}
