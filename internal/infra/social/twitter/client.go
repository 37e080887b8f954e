// Package twitter implements the announce.Publisher and
// saleswatch.WatermarkSource capabilities over the Twitter v1.1 REST API,
// using OAuth1 request signing.
package twitter

import (
	"net/http"

	"github.com/dghubble/oauth1"
)

const (
	defaultAPIBaseURL    = "https://api.twitter.com/1.1"
	defaultUploadBaseURL = "https://upload.twitter.com/1.1"
)

// Credentials holds the OAuth1 key material of the bot account.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

// client talks to the Twitter API with OAuth1-signed requests on behalf of a
// single account.
type client struct {
	conn          *http.Client // OAuth1-signing HTTP client
	accountHandle string       // screen name of the bot account

	apiBaseURL    string
	uploadBaseURL string
}

// config holds construction options for the Twitter client.
type config struct {
	apiBaseURL    string
	uploadBaseURL string
	httpClient    *http.Client
}

// Option configures the Twitter client.
type Option func(*config)

// WithAPIBaseURL overrides the REST API base URL. Intended for tests.
func WithAPIBaseURL(u string) Option {
	return func(c *config) {
		c.apiBaseURL = u
	}
}

// WithUploadBaseURL overrides the media upload base URL. Intended for tests.
func WithUploadBaseURL(u string) Option {
	return func(c *config) {
		c.uploadBaseURL = u
	}
}

// WithHTTPClient replaces the OAuth1-signing HTTP client entirely.
// Intended for tests; production callers should rely on the credentials.
func WithHTTPClient(h *http.Client) Option {
	return func(c *config) {
		c.httpClient = h
	}
}

// NewClient creates a Twitter client posting as the given account.
func NewClient(creds Credentials, accountHandle string, opts ...Option) *client {
	cfg := config{
		apiBaseURL:    defaultAPIBaseURL,
		uploadBaseURL: defaultUploadBaseURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := cfg.httpClient
	if conn == nil {
		oauthConfig := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
		token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
		conn = oauthConfig.Client(oauth1.NoContext, token)
	}

	return &client{
		conn:          conn,
		accountHandle: accountHandle,
		apiBaseURL:    cfg.apiBaseURL,
		uploadBaseURL: cfg.uploadBaseURL,
	}
}
