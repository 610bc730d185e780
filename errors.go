package authprovider

import (
	"errors"
	"fmt"
)

// Sentinel errors returned without issuing a network call.
var (
	// ErrNotSignedIn is returned by operations that require a stored token
	// when there is none.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrOAuthNotConfigured is returned by SignInOAuth when Config.OAuth
	// was not set.
	ErrOAuthNotConfigured = errors.New("oauth is not configured")
)

// Error is the normalized failure every network-backed operation returns.
// Transport failures, non-2xx responses and error-flagged response bodies all
// coalesce into this shape so callers never have to tell them apart.
type Error struct {
	// Status is the HTTP status code of the response, or 0 for failures
	// that never produced one (connection refused, encoding errors).
	Status int

	// Message is the backend's error string when the response carried one,
	// otherwise a description of what went wrong.
	Message string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("auth provider: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("auth provider: %s", e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error { return e.cause }

// AsError unpacks a normalized *Error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// wrapError normalizes a local failure (transport, encoding, store) that
// never produced an HTTP status.
func wrapError(context string, err error) *Error {
	return &Error{Message: fmt.Sprintf("%s: %v", context, err), cause: err}
}
