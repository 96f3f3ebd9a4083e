package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hisabapp/hisab/internal/core/services"
	"github.com/hisabapp/hisab/internal/middleware"
	"github.com/hisabapp/hisab/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken_RoundTrip(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "hisab",
		JWTExpiryDuration: time.Hour,
	}
	service := services.NewTokenService(cfg)

	signed, err := service.IssueToken("asha@example.com", "Asha", "https://example.com/a.png")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := &middleware.SessionClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "asha@example.com", claims.Subject)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "https://example.com/a.png", claims.Image)
	assert.Equal(t, "hisab", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIsEmailAllowed_CaseInsensitive(t *testing.T) {
	cfg := &config.Config{
		AllowedEmails: []string{"asha@example.com", "badal@example.com"},
	}
	service := services.NewGoogleOAuthService(cfg)

	assert.True(t, service.IsEmailAllowed("asha@example.com"))
	assert.True(t, service.IsEmailAllowed("Asha@Example.COM"))
	assert.False(t, service.IsEmailAllowed("mallory@example.com"))
	assert.False(t, service.IsEmailAllowed(""))
}
