package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials identifies the app registration used for app-only site access
type Credentials struct {
	TenantID string
	ClientID string

	// Resource is the audience, e.g. "https://tenant.sharepoint.com"
	Resource string
}

// Provider hands out bearer tokens for the site API. Token refresh and
// caching are delegated to the oauth2 token source.
type Provider struct {
	source oauth2.TokenSource
}

// NewProvider builds a client-credentials token source for the tenant
func NewProvider(ctx context.Context, creds Credentials, clientSecret string) *Provider {
	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", creds.TenantID),
		Scopes:       []string{creds.Resource + "/.default"},
	}
	return &Provider{source: cfg.TokenSource(ctx)}
}

// Token returns a valid access token, refreshing if needed
func (p *Provider) Token(ctx context.Context) (string, error) {
	token, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to acquire access token: %w", err)
	}
	return token.AccessToken, nil
}

// StaticProvider returns a fixed token; used in tests
type StaticProvider string

// Token returns the fixed token
func (p StaticProvider) Token(ctx context.Context) (string, error) {
	return string(p), nil
}
