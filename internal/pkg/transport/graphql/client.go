// Package graphql provides a generic GraphQL-over-HTTP client.
// It posts a standard {query, variables} envelope, surfaces server-side
// GraphQL errors as Go errors, and returns the raw data payload for the
// caller to decode.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ErrServerReturnedErrors indicates that the remote GraphQL server answered
// with a non-empty errors list.
var ErrServerReturnedErrors = errors.New("graphql server error")

// response represents a standard GraphQL HTTP response envelope.
type response struct {
	Data   json.RawMessage `json:"data"` // raw data payload returned by the server
	Errors []struct {
		Message string `json:"message"` // human-readable error message
	} `json:"errors"`
}

// Err returns an error if the response includes any GraphQL errors,
// wrapping ErrServerReturnedErrors with the joined messages.
func (r response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.Message
	}

	return fmt.Errorf("%w: %s", ErrServerReturnedErrors, strings.Join(messages, "; "))
}

// Client defines the interface for a generic GraphQL client.
// It can be used to abstract the underlying implementation and facilitate
// mocking or testing.
type Client interface {
	// Query sends a GraphQL request with the given document and variables.
	// It returns the raw data payload or an error if the request or
	// response fails.
	Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	endpoint   string       // the URL of the remote GraphQL server
	apiKey     string       // bearer credential sent with every request, empty disables the header
	httpClient *http.Client // the HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Query sends a GraphQL request to the remote server. Every request carries
// a UUID correlation id in the X-Request-ID header.
func (c *client) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrServerReturnedErrors, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Data, data.Err()
}

// NewClient constructs a Client that sends GraphQL requests to the given
// endpoint using the provided HTTP client. apiKey may be empty when the
// server requires no credential.
func NewClient(httpClient *http.Client, endpoint, apiKey string) *client {
	return &client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}
