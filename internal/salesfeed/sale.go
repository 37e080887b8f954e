package salesfeed

import (
	"strings"

	"github.com/flarebot/saleswatch/internal/marketdir"

	"github.com/shopspring/decimal"
)

// Sale is the normalized record of a single announced-sale transaction,
// built fresh from a feed page and kept only for the duration of one cycle.
type Sale struct {
	TxID         string                 // unique transaction id within the collection; authoritative dedup key
	NFTID        string                 // item identifier within the collection
	ImageURL     string                 // source location of the item's image
	BuyerHandle  string                 // optional social handle of the buyer (empty if unknown)
	SellerHandle string                 // optional social handle of the seller (empty if unknown)
	Price        decimal.Decimal        // sale price, rendered with exactly two fraction digits
	Timestamp    int64                  // sale time in seconds since epoch, source-supplied
	Marketplace  *marketdir.Marketplace // resolved marketplace, nil if unresolved
}

// StopCondition is the combined id/timestamp test that halts feed traversal.
// Traversal halts at the first record whose id equals TxID or whose timestamp
// is strictly below TimestampFloor. Either half may be disabled: an empty
// TxID disables the id test and a non-positive TimestampFloor disables the
// floor test.
type StopCondition struct {
	TxID           string
	TimestampFloor int64
}

// Halts reports whether a record with the given id and timestamp satisfies
// the stop condition.
func (s StopCondition) Halts(txID string, timestamp int64) bool {
	if s.TxID != "" && txID == s.TxID {
		return true
	}

	return s.TimestampFloor > 0 && timestamp < s.TimestampFloor
}

// PageQuery identifies a single page of the sales feed for one collection.
type PageQuery struct {
	ProjectID  string `validate:"required"` // collection identifier
	PageNumber int    `validate:"gte=1"`    // 1-based page index
	PageSize   int    `validate:"gte=1"`    // records per page
}

// nftIDFromName extracts the item identifier from a feed record name such as
// "Lifinity Flare #1234". When the name carries no "#" separator the full
// name is returned unchanged.
func nftIDFromName(name string) string {
	if _, id, ok := strings.Cut(name, "#"); ok {
		return id
	}

	return name
}
