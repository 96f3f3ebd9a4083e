package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade exchanges an authorization code for Google tokens,
// validates the resulting ID token and enforces the email allow-list.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, rawIDToken string) (*idtoken.Payload, error)
	IsEmailAllowed(email string) bool
}

// TokenSvcFacade issues the application JWT carried by the UI.
type TokenSvcFacade interface {
	IssueToken(email, name, image string) (string, error)
}
