package authprovider

import (
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Claims decodes the stored access token as a JWT without verifying its
// signature. Verification belongs to the backend; this is for local
// inspection only (expiry display, subject lookup). Returns ErrNotSignedIn
// when no token is stored, or a parse error when the token is not a JWT.
func (p *Provider) Claims() (jwt.MapClaims, error) {
	token, err := p.store.Get(StorageKey)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotSignedIn
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenSource adapts the provider to oauth2.TokenSource so it plugs into
// libraries built around golang.org/x/oauth2. Token returns ErrNotSignedIn
// when no token is stored.
func (p *Provider) TokenSource() oauth2.TokenSource {
	return tokenSource{provider: p}
}

type tokenSource struct {
	provider *Provider
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	token, err := s.provider.AccessToken()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotSignedIn
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// AuthCodeURL builds the URL the user agent should visit to begin the OAuth
// flow. The authorization code delivered to RedirectURL is then exchanged via
// Provider.SignInOAuth.
func (c *OAuthConfig) AuthCodeURL(state string) string {
	conf := oauth2.Config{
		ClientID:    c.ClientID,
		RedirectURL: c.RedirectURL,
		Scopes:      c.Scopes,
		Endpoint:    oauth2.Endpoint{AuthURL: c.AuthURL},
	}
	return conf.AuthCodeURL(state)
}
