package services

import (
	"context"
	"strings"

	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthService exchanges Google authorization codes, validates the
// resulting ID tokens and enforces the email allow-list. Authorization is
// decided entirely here, at sign-in; the rest of the app only reads the
// session for display.
type GoogleOAuthService struct {
	oauthConfig *oauth2.Config
	clientID    string
	allowed     map[string]struct{}
}

func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	allowed := make(map[string]struct{}, len(cfg.AllowedEmails))
	for _, email := range cfg.AllowedEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}
	return &GoogleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		clientID: cfg.GoogleClientID,
		allowed:  allowed,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*GoogleOAuthService)(nil)

// ExchangeCodeForToken exchanges the frontend's authorization code for
// Google tokens.
func (s *GoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.oauthConfig.Exchange(ctx, code)
}

// ValidateGoogleIDToken verifies the ID token signature and audience.
func (s *GoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, rawIDToken string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, rawIDToken, s.clientID)
}

// IsEmailAllowed reports whether email is on the allow-list.
func (s *GoogleOAuthService) IsEmailAllowed(email string) bool {
	_, ok := s.allowed[strings.ToLower(email)]
	return ok
}
