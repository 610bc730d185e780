package authprovider

import (
	"net/http"
	"net/url"
)

// Credentials are the fields accepted by the sign-up and sign-in endpoints.
// Sign-in identifies the account by email; sign-up additionally carries the
// username.
type Credentials struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// SignUp registers a new account. On success the issued access token is
// stored and the created user is returned; on failure stored state is
// untouched.
func (p *Provider) SignUp(creds Credentials) (User, error) {
	data, err := p.do(http.MethodPost, p.endpoint("sign-up"), creds, false)
	if err != nil {
		return nil, err
	}
	if err := p.store.Set(StorageKey, data.AccessToken); err != nil {
		return nil, wrapError("store token", err)
	}

	p.logger.Info().Msg("signed up")
	return data.User, nil
}

// SignIn authenticates with credentials. On success the issued access token
// is stored and, if the current location's query string carries a redirectTo
// value, the redirect callback is invoked with it. On failure stored state is
// untouched.
func (p *Provider) SignIn(creds Credentials) (User, error) {
	return p.signIn(p.endpoint("sign-in"), creds)
}

// SignInOAuth completes an OAuth authorization-code flow by posting the code
// to the provider-specific sign-in endpoint. Requires Config.OAuth; the
// post-success behavior matches SignIn.
func (p *Provider) SignInOAuth(code string) (User, error) {
	if p.cfg.OAuth == nil {
		return nil, ErrOAuthNotConfigured
	}

	body := map[string]string{"code": code}
	if p.cfg.OAuth.ClientID != "" {
		body["clientId"] = p.cfg.OAuth.ClientID
	}
	return p.signIn(p.endpoint("oauth", p.cfg.OAuth.Provider, "sign-in"), body)
}

func (p *Provider) signIn(endpoint string, body any) (User, error) {
	data, err := p.do(http.MethodPost, endpoint, body, false)
	if err != nil {
		return nil, err
	}
	if err := p.store.Set(StorageKey, data.AccessToken); err != nil {
		return nil, wrapError("store token", err)
	}

	p.logger.Info().Msg("signed in")
	p.followSignInRedirect()
	return data.User, nil
}

// followSignInRedirect honors a redirectTo parameter carried by the current
// location's query string. Runs only after the token has been stored.
func (p *Provider) followSignInRedirect() {
	loc := p.location()
	if loc == "" {
		return
	}
	u, err := url.Parse(loc)
	if err != nil {
		return
	}
	target := u.Query().Get(RedirectToParam)
	if target == "" {
		return
	}

	p.logger.Debug().Str("target", target).Msg("post sign-in redirect")
	p.redirect(target)
}

// SignOut removes the stored token unconditionally. It never issues a
// network call.
func (p *Provider) SignOut() error {
	return p.store.Remove(StorageKey)
}

// IsSignedIn reports whether an access token is currently stored.
func (p *Provider) IsSignedIn() bool {
	token, err := p.store.Get(StorageKey)
	return err == nil && token != ""
}

// AccessToken returns the stored token verbatim, or "" when signed out.
func (p *Provider) AccessToken() (string, error) {
	return p.store.Get(StorageKey)
}

// CurrentUser fetches the profile associated with the stored token. When
// signed out it returns (nil, nil) without touching the network.
func (p *Provider) CurrentUser() (User, error) {
	if !p.IsSignedIn() {
		return nil, nil
	}

	data, err := p.do(http.MethodGet, p.endpoint("current-user"), nil, true)
	if err != nil {
		return nil, err
	}
	return data.User, nil
}

// UpdateCurrentUser applies a partial profile update to the signed-in user
// and returns the updated record. When signed out it returns ErrNotSignedIn
// without touching the network.
func (p *Provider) UpdateCurrentUser(patch User) (User, error) {
	if !p.IsSignedIn() {
		return nil, ErrNotSignedIn
	}

	data, err := p.do(http.MethodPut, p.endpoint("current-user"), patch, true)
	if err != nil {
		return nil, err
	}
	return data.User, nil
}

// AskNewPassword requests a password reset email for the given address.
// Success returns nil; the reset token arrives out of band.
func (p *Provider) AskNewPassword(email string) error {
	_, err := p.do(http.MethodPost, p.endpoint("ask-new-password"), map[string]string{"email": email}, false)
	return err
}

// ResetPassword exchanges a reset token received out of band for a new
// password. It does not sign the user in.
func (p *Provider) ResetPassword(token, newPassword string) error {
	body := map[string]string{"token": token, "password": newPassword}
	_, err := p.do(http.MethodPost, p.endpoint("reset-password"), body, false)
	return err
}
