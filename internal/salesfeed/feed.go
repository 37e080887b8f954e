package salesfeed

import (
	"context"

	"github.com/flarebot/saleswatch/internal/marketdir"

	"github.com/shopspring/decimal"
)

// MarketplaceState carries the marketplace-level attributes of a raw feed
// record, as reported by the upstream feed.
type MarketplaceState struct {
	Signature      string          // transaction signature, unique within the collection
	BlockTimestamp int64           // sale time in seconds since epoch
	BuyerHandle    string          // buyer's social handle, empty if unknown
	SellerHandle   string          // seller's social handle, empty if unknown
	Price          decimal.Decimal // sale price
	ProgramID      string          // marketplace program id
	InstanceID     string          // marketplace instance id, may be blank
}

// FeedRecord is a raw, unnormalized record returned by the external sales
// feed. Records arrive newest-first within a page and across pages.
type FeedRecord struct {
	NFTName  string           // item display name (e.g. "Lifinity Flare #1234")
	ImageURL string           // source location of the item's image
	State    MarketplaceState // marketplace-level sale attributes
}

// FeedSource defines the capability of fetching pages from the external
// paginated transaction feed of a collection.
type FeedSource interface {
	// FetchSalesPage retrieves one page of sale records for the collection
	// identified by the query. Records must be ordered newest-first. A page
	// shorter than the requested page size indicates the end of the feed.
	//
	// ctx controls cancellation and deadlines for the underlying I/O.
	FetchSalesPage(ctx context.Context, query PageQuery) ([]FeedRecord, error)
}

// MarketplaceResolver resolves a (programID, instanceID) pair to marketplace
// metadata. Implementations return false when no entry matches.
type MarketplaceResolver interface {
	Resolve(programID, instanceID string) (marketdir.Marketplace, bool)
}
