package authprovider

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// User is the profile record returned by the backend. The provider passes it
// through without interpreting its shape.
type User map[string]any

// envelope is the two-slot shape the backend wraps every reply in: exactly
// one of data or error is populated.
type envelope struct {
	Data  payload `json:"data"`
	Error string  `json:"error"`
}

// payload is the data slot of a successful reply. Sign-up and sign-in replies
// carry the issued access token alongside the user.
type payload struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// do issues exactly one JSON round trip and normalizes every failure mode
// into a *Error. When authenticated is set, the stored token is presented as
// a bearer header.
func (p *Provider) do(method, url string, body any, authenticated bool) (*payload, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, wrapError("encode request", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, wrapError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authenticated {
		token, err := p.store.Get(StorageKey)
		if err != nil {
			return nil, wrapError("read token", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	p.logger.Debug().Str("method", method).Str("url", url).Msg("auth api request")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, wrapError("request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError("read response", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed body on a non-2xx reply still normalizes below with
		// the status text as the message.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return nil, &Error{Status: resp.StatusCode, Message: "invalid response body", cause: err}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Status: resp.StatusCode, Message: message}
	}

	// Error-flagged body on a 2xx reply.
	if env.Error != "" {
		return nil, &Error{Status: resp.StatusCode, Message: env.Error}
	}

	return &env.Data, nil
}
