package authprovider

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Defaults applied by New when the corresponding Config field is empty.
const (
	DefaultProtocol   = "https"
	DefaultAPIVersion = "v1"
)

// Config describes the backend auth API a Provider talks to.
type Config struct {
	// Host is the backend host name or IP. Required.
	Host string `validate:"required"`

	// Port is the backend port. Zero means the protocol default.
	Port int `validate:"omitempty,gte=1,lte=65535"`

	// Protocol is "http" or "https". Defaults to https.
	Protocol string `validate:"omitempty,oneof=http https"`

	// APIVersion is the version segment of the API path. Defaults to "v1".
	APIVersion string

	// OAuth enables the OAuth sign-in endpoint. Leave nil for
	// credential-only providers.
	OAuth *OAuthConfig
}

// OAuthConfig identifies the OAuth provider the backend completes
// authorization-code flows against.
type OAuthConfig struct {
	// Provider is the backend's name for the OAuth provider, e.g. "google".
	// It selects the oauth/{provider}/sign-in endpoint.
	Provider string `validate:"required"`

	// ClientID is the public OAuth client identifier, forwarded with the
	// authorization code when set.
	ClientID string

	// AuthURL, RedirectURL and Scopes configure AuthCodeURL for applications
	// that also start the flow from this client.
	AuthURL     string
	RedirectURL string
	Scopes      []string
}

// RedirectFunc receives a target location in response to post-auth or
// auto-logout events. The default is a no-op.
type RedirectFunc func(target string)

// LocationFunc returns the host application's current location, used to read
// the redirectTo query parameter and to build the return location on a 401.
// The default returns "".
type LocationFunc func() string

// Provider is a stateful façade over a remote auth API. The only state it
// holds between calls is the access token in its TokenStore.
type Provider struct {
	cfg      Config
	baseURL  string
	store    TokenStore
	client   *http.Client
	redirect RedirectFunc
	location LocationFunc
	logger   zerolog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient sets the HTTP client used for API calls (for timeouts, TLS
// config, proxies, etc.).
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithTokenStore sets the store the access token is persisted in. The default
// is an in-memory store that does not survive process restarts.
func WithTokenStore(store TokenStore) Option {
	return func(p *Provider) {
		if store != nil {
			p.store = store
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithRedirectFunc sets the callback invoked with redirect targets.
func WithRedirectFunc(fn RedirectFunc) Option {
	return func(p *Provider) {
		if fn != nil {
			p.redirect = fn
		}
	}
}

// WithLocationFunc sets the callback that reports the current location.
func WithLocationFunc(fn LocationFunc) Option {
	return func(p *Provider) {
		if fn != nil {
			p.location = fn
		}
	}
}

var validate = validator.New()

// New creates a Provider for the backend described by cfg. Defaults are
// applied before validation, so a Config carrying only a Host is valid.
func New(cfg Config, opts ...Option) (*Provider, error) {
	if cfg.Protocol == "" {
		cfg.Protocol = DefaultProtocol
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p := &Provider{
		cfg:      cfg,
		store:    NewMemoryTokenStore(),
		client:   http.DefaultClient,
		redirect: func(string) {},
		location: func() string { return "" },
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	host := cfg.Host
	if cfg.Port != 0 {
		host = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	}
	p.baseURL = fmt.Sprintf("%s://%s/api/%s", cfg.Protocol, host, cfg.APIVersion)

	return p, nil
}

// BaseURL returns the absolute API base this provider is configured for,
// e.g. "https://api.example.com/api/v1".
func (p *Provider) BaseURL() string {
	return p.baseURL
}

// endpoint builds the absolute URL for a path under the auth API.
func (p *Provider) endpoint(parts ...string) string {
	return p.baseURL + "/auth/" + strings.Join(parts, "/")
}
