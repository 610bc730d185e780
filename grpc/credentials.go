// Package grpc adapts the auth provider to gRPC per-RPC credentials, so gRPC
// clients present the same stored access token HTTP calls do.
package grpc

import (
	"context"

	"google.golang.org/grpc/credentials"
)

// TokenSource supplies the current access token. *authprovider.Provider
// satisfies it.
type TokenSource interface {
	AccessToken() (string, error)
}

// TokenCredentials implements credentials.PerRPCCredentials by presenting
// the access token as a bearer authorization header on every RPC.
type TokenCredentials struct {
	source        TokenSource
	allowInsecure bool
}

var _ credentials.PerRPCCredentials = (*TokenCredentials)(nil)

// NewTokenCredentials creates per-RPC credentials backed by source. Pass the
// result to grpc.WithPerRPCCredentials when dialing.
func NewTokenCredentials(source TokenSource) *TokenCredentials {
	return &TokenCredentials{source: source}
}

// AllowInsecureTransport disables the transport security requirement. For
// local development against plaintext servers only.
func (c *TokenCredentials) AllowInsecureTransport() *TokenCredentials {
	c.allowInsecure = true
	return c
}

// GetRequestMetadata implements credentials.PerRPCCredentials. RPCs go out
// without an authorization entry when no token is stored.
func (c *TokenCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	token, err := c.source.AccessToken()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return map[string]string{}, nil
	}
	return map[string]string{"authorization": "Bearer " + token}, nil
}

// RequireTransportSecurity implements credentials.PerRPCCredentials.
func (c *TokenCredentials) RequireTransportSecurity() bool {
	return !c.allowInsecure
}
