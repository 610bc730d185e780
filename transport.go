package authprovider

import (
	"net/http"
)

// Transport is an http.RoundTripper that presents the stored access token as
// a bearer header on every request. Requests are cloned, never mutated.
type Transport struct {
	// Base is the transport requests are forwarded to. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper

	// Store supplies the token. Requests go out without an Authorization
	// header when no token is stored.
	Store TokenStore
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.Store.Get(StorageKey)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req2 := req.Clone(req.Context())
		req2.Header.Set("Authorization", "Bearer "+token)
		req = req2
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// HTTPClient returns an http.Client whose requests carry the provider's
// stored token, for calling application endpoints beyond the auth API.
func (p *Provider) HTTPClient() *http.Client {
	return &http.Client{Transport: &Transport{Store: p.store}}
}
