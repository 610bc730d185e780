// Package authprovider is a client-side authentication provider: a small
// configurable façade over a remote auth API that signs users up and in,
// fetches and updates the current user, drives the password-reset flow, and
// persists the issued access token through a pluggable token store.
//
// # Session model
//
// The stored access token is the only session state. A token present in the
// store means signed in; absent means signed out. The token is set only by a
// successful sign-up or sign-in, and cleared only by SignOut or by CheckError
// observing a 401.
//
// # Basic Usage
//
// Create a provider for your backend:
//
//	provider, err := authprovider.New(authprovider.Config{
//	    Host: "api.example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	user, err := provider.SignIn(authprovider.Credentials{
//	    Email:    "user@example.com",
//	    Password: "secret",
//	})
//
// Authenticated calls carry the stored token automatically:
//
//	me, err := provider.CurrentUser()
//
// # Durable storage
//
// The default token store is in-memory. For a token that survives process
// restarts, inject a durable store:
//
//	store, err := fs.NewTokenStore("", "myapp")
//	provider, err := authprovider.New(cfg, authprovider.WithTokenStore(store))
//
// The stores/gorm subpackage persists tokens in any database GORM supports.
//
// # Error handling
//
// Every network-backed operation normalizes its failures: transport errors,
// non-2xx responses, and error-flagged response bodies all come back as a
// *Error carrying the HTTP status code and the backend's message. Callers
// never need to distinguish a refused connection from a well-formed error
// envelope.
//
// # Auto sign-out policy
//
// CheckError is the explicit policy hook for responses the application
// received elsewhere: a 401 clears the token and redirects to the configured
// sign-in location with the current location attached as a redirectTo query
// parameter; a 403 redirects without touching the token.
package authprovider
