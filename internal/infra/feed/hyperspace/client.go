// Package hyperspace implements the salesfeed.FeedSource,
// announce.FloorPriceSource and marketdir.SnapshotSource capabilities over
// the Hyperspace GraphQL API.
package hyperspace

import (
	"github.com/flarebot/saleswatch/internal/pkg/transport/graphql"
)

// client talks to the Hyperspace API through a generic GraphQL client.
type client struct {
	conn graphql.Client // underlying GraphQL client
}

// NewClient creates a new Hyperspace API client using the provided GraphQL
// connection.
func NewClient(conn graphql.Client) *client {
	return &client{
		conn: conn,
	}
}
