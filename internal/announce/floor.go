package announce

import (
	"context"

	"github.com/shopspring/decimal"
)

// FloorPriceSource looks up the lowest current listed price for a
// collection, used as contextual decoration in announcements. Lookups are
// best-effort: a failure only omits the floor-price clause and never blocks
// publishing.
type FloorPriceSource interface {
	FloorPrice(ctx context.Context, projectID string) (decimal.Decimal, error)
}
