package announce

import (
	"fmt"
	"strings"

	"github.com/flarebot/saleswatch/internal/salesfeed"

	"github.com/shopspring/decimal"
)

const (
	// defaultExplorerTxURL is the public ledger explorer the transaction
	// reference link points at.
	defaultExplorerTxURL = "https://solscan.io/tx/"

	// defaultVenue is the venue clause used when the marketplace could not
	// be resolved.
	defaultVenue = "Solana"
)

// MessageComposer renders the deterministic announcement template for a
// sale. Optional clauses (buyer, seller, venue, floor price) are omitted
// cleanly when their data is absent, leaving no stray punctuation.
type MessageComposer struct {
	CollectionName string   // item display prefix (e.g. "Lifinity Flare")
	ExplorerTxURL  string   // base URL the transaction id is appended to
	TopicTags      []string // fixed topic tags appended to every post
}

// Compose renders the announcement text for a sale. floor is the best-effort
// floor price of the collection; nil omits the floor clause.
func (c MessageComposer) Compose(sale salesfeed.Sale, floor *decimal.Decimal) string {
	var b strings.Builder

	if sale.BuyerHandle != "" {
		fmt.Fprintf(&b, "@%s", sale.BuyerHandle)
	} else {
		b.WriteString("Someone")
	}
	fmt.Fprintf(&b, " just purchased %s #%s\n", c.CollectionName, sale.NFTID)

	if sale.SellerHandle != "" {
		fmt.Fprintf(&b, "from @%s ", sale.SellerHandle)
	}

	venue := defaultVenue
	if sale.Marketplace != nil {
		venue = sale.Marketplace.DisplayName
	}
	fmt.Fprintf(&b, "on %s for ◎%s!", venue, sale.Price.StringFixed(2))

	if floor != nil {
		fmt.Fprintf(&b, " (floor ◎%s)", floor.StringFixed(2))
	}

	fmt.Fprintf(&b, "\n\nTransaction details \U0001F449 %s%s\n", c.explorerTxURL(), sale.TxID)

	if len(c.TopicTags) > 0 {
		fmt.Fprintf(&b, "\n%s", strings.Join(c.TopicTags, " "))
	}

	return b.String()
}

func (c MessageComposer) explorerTxURL() string {
	if c.ExplorerTxURL != "" {
		return c.ExplorerTxURL
	}

	return defaultExplorerTxURL
}
