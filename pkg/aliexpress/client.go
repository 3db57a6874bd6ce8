// Package aliexpress provides a signed client for the AliExpress Open
// Platform API. It owns request signing, URL assembly, HTTP dispatch and
// error classification; the dropship, affiliate and system packages build
// typed operations on top of the Executor interface defined here.
package aliexpress

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultSyncURL is the gateway for legacy dot-named operations.
	DefaultSyncURL = "https://api-sg.aliexpress.com/sync"
	// DefaultRestURL is the gateway prefix for path-style operations.
	DefaultRestURL = "https://api-sg.aliexpress.com/rest"
	// SignMethod is the sign_method value sent with every request.
	SignMethod = "sha256"

	defaultTimeout = 30 * time.Second
)

// Credentials identify the application and, once authorized, the seller
// session. They are copied into the Client and never modified.
type Credentials struct {
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret"`
	Session   string `json:"session"`
}

// Validate reports missing application credentials. Session is optional
// because token creation runs before a session exists.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AppKey, validation.Required),
		validation.Field(&c.AppSecret, validation.Required),
	)
}

// Doer performs an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Executor runs a named platform operation and returns the decoded body.
// Failures are always *Error values.
type Executor interface {
	Execute(ctx context.Context, method string, params Params) (Body, error)
}

// Client implements Executor against the live platform gateways.
// A Client is safe for concurrent use; it holds no per-call state.
type Client struct {
	creds   Credentials
	syncURL string
	restURL string
	client  Doer
	logger  *slog.Logger
	nowFunc func() time.Time
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.client = d
	}
}

// WithSyncURL overrides the legacy gateway URL.
func WithSyncURL(u string) Option {
	return func(c *Client) {
		c.syncURL = u
	}
}

// WithRestURL overrides the path-style gateway URL.
func WithRestURL(u string) Option {
	return func(c *Client) {
		c.restURL = u
	}
}

// WithLogger sets the logger used for per-call debug and failure lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// NewClient creates a new AliExpress API client.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, NewValidationError(err)
	}

	c := &Client{
		creds:   creds,
		syncURL: DefaultSyncURL,
		restURL: DefaultRestURL,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  slog.New(slog.DiscardHandler),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// AppKey returns the application key the client signs with.
func (c *Client) AppKey() string {
	return c.creds.AppKey
}
