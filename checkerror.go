package authprovider

import (
	"net/http"
	"net/url"
)

// RedirectToParam is the query parameter carrying the location to return to
// after authentication.
const RedirectToParam = "redirectTo"

// CheckError applies the session-invalidation policy for an HTTP status the
// application observed on one of its own requests. It never issues a network
// call.
//
// A 401 clears the stored token and invokes the redirect callback with the
// configured target plus the current location as a redirectTo parameter, so
// the user lands back where they were after signing in again. A 403 invokes
// the redirect callback with its target only; the token stays valid. Any
// other status is a no-op.
//
// The token is cleared on a 401 even when redirects has no entry for it.
func (p *Provider) CheckError(status int, redirects map[int]string) error {
	switch status {
	case http.StatusUnauthorized:
		if err := p.store.Remove(StorageKey); err != nil {
			return wrapError("remove token", err)
		}
		p.logger.Warn().Int("status", status).Msg("access token rejected, signed out")

		if target := redirects[status]; target != "" {
			p.redirect(target + "?" + RedirectToParam + "=" + url.QueryEscape(p.location()))
		}

	case http.StatusForbidden:
		if target := redirects[status]; target != "" {
			p.redirect(target)
		}
	}

	return nil
}
