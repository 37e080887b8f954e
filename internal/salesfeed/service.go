// Package salesfeed walks the external sales feed of a single collection
// page by page, normalizing raw records into Sale values and halting at the
// first record that satisfies a StopCondition.
//
// The feed contract is newest-first: timestamps are non-increasing as pages
// are consumed, and the stop condition relies on that ordering. The traversal
// therefore guards it explicitly and fails with ErrFeedOutOfOrder instead of
// mis-applying the stop condition to a disordered feed.
package salesfeed

import (
	"context"
	"errors"
	"fmt"

	"github.com/flarebot/saleswatch/internal/pkg/validator"
)

// ErrFeedOutOfOrder is returned when the feed violates its newest-first
// contract, i.e. a record carries a timestamp greater than one already
// consumed earlier in the same traversal.
var ErrFeedOutOfOrder = errors.New("sales feed records are not in newest-first order")

const (
	// defaultPageSize is the number of records requested per feed page.
	defaultPageSize = 50

	// defaultMaxPages bounds a single traversal. It trades completeness (a
	// burst of more than maxPages*pageSize new sales in one interval is
	// partially missed) for bounded latency and memory per cycle.
	defaultMaxPages = 3
)

// Service defines the feed traversal entrypoint.
type Service interface {
	// FetchSales walks the feed from page 1, returning every normalized
	// sale strictly before the first record that satisfies stop, in the
	// received newest-first order.
	//
	// A page fetch failure at any page aborts the whole traversal: no
	// partial result is returned.
	FetchSales(ctx context.Context, stop StopCondition) ([]Sale, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	feed         FeedSource
	marketplaces MarketplaceResolver

	projectID string
	pageSize  int
	maxPages  int
}

var _ Service = (*service)(nil)

// FetchSales implements the Service interface.
func (s *service) FetchSales(ctx context.Context, stop StopCondition) ([]Sale, error) {
	var (
		sales         []Sale
		lastTimestamp int64
		firstRecord   = true
	)

	for page := 1; ; page++ {
		query := PageQuery{
			ProjectID:  s.projectID,
			PageNumber: page,
			PageSize:   s.pageSize,
		}
		if err := validator.Validate(query); err != nil {
			return nil, err
		}

		records, err := s.feed.FetchSalesPage(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("fetching sales page %d for %q: %w", page, s.projectID, err)
		}

		needMorePages := true
		for _, record := range records {
			if !firstRecord && record.State.BlockTimestamp > lastTimestamp {
				return nil, ErrFeedOutOfOrder
			}
			lastTimestamp, firstRecord = record.State.BlockTimestamp, false

			if stop.Halts(record.State.Signature, record.State.BlockTimestamp) {
				needMorePages = false
				break
			}

			sales = append(sales, s.normalize(record))
		}

		// A short page means the feed itself has no more records.
		if len(records) < s.pageSize {
			needMorePages = false
		}

		if !needMorePages || page == s.maxPages {
			return sales, nil
		}
	}
}

// normalize converts a raw feed record into a Sale, enriching it with
// marketplace metadata when a resolver is configured and the record's
// (programID, instanceID) pair resolves.
func (s *service) normalize(record FeedRecord) Sale {
	sale := Sale{
		TxID:         record.State.Signature,
		NFTID:        nftIDFromName(record.NFTName),
		ImageURL:     record.ImageURL,
		BuyerHandle:  record.State.BuyerHandle,
		SellerHandle: record.State.SellerHandle,
		Price:        record.State.Price,
		Timestamp:    record.State.BlockTimestamp,
	}

	if s.marketplaces != nil {
		if marketplace, ok := s.marketplaces.Resolve(record.State.ProgramID, record.State.InstanceID); ok {
			sale.Marketplace = &marketplace
		}
	}

	return sale
}

// config holds construction options for the salesfeed service.
type config struct {
	marketplaces MarketplaceResolver
	pageSize     int
	maxPages     int
}

// Option configures the salesfeed service.
type Option func(*config)

// WithMarketplaceResolver sets the resolver used to enrich normalized sales
// with marketplace metadata. Without it every Sale carries a nil Marketplace.
func WithMarketplaceResolver(r MarketplaceResolver) Option {
	return func(c *config) {
		c.marketplaces = r
	}
}

// WithPageSize sets the number of records requested per page. Default: 50.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithMaxPages bounds the number of page fetches per traversal. Default: 3.
func WithMaxPages(n int) Option {
	return func(c *config) {
		c.maxPages = n
	}
}

// New creates a salesfeed service that traverses the feed of the collection
// identified by projectID through the given FeedSource.
func New(feed FeedSource, projectID string, opts ...Option) *service {
	cfg := config{
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		feed:         feed,
		marketplaces: cfg.marketplaces,
		projectID:    projectID,
		pageSize:     cfg.pageSize,
		maxPages:     cfg.maxPages,
	}
}
