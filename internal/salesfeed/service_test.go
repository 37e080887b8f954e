package salesfeed

import (
	"context"
	"errors"
	"testing"

	"github.com/flarebot/saleswatch/internal/marketdir"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// record builds a minimal feed record for traversal tests.
func record(signature string, timestamp int64) FeedRecord {
	return FeedRecord{
		NFTName:  "Lifinity Flare #" + signature,
		ImageURL: "https://img.example/" + signature,
		State: MarketplaceState{
			Signature:      signature,
			BlockTimestamp: timestamp,
			Price:          decimal.NewFromInt(1),
		},
	}
}

func txIDs(sales []Sale) []string {
	ids := make([]string, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.TxID)
	}
	return ids
}

func TestNew(t *testing.T) {
	t.Run("creates service with default configuration", func(t *testing.T) {
		feed := NewFeedSourceMock(t)

		svc := New(feed, "lifinity_flares")

		require.NotNil(t, svc)
		assert.Equal(t, feed, svc.feed)
		assert.Equal(t, "lifinity_flares", svc.projectID)
		assert.Equal(t, defaultPageSize, svc.pageSize)
		assert.Equal(t, defaultMaxPages, svc.maxPages)
		assert.Nil(t, svc.marketplaces)
	})

	t.Run("creates service with custom options", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		directory := marketdir.NewDirectory(nil)

		svc := New(feed, "lifinity_flares",
			WithPageSize(10),
			WithMaxPages(5),
			WithMarketplaceResolver(directory),
		)

		require.NotNil(t, svc)
		assert.Equal(t, 10, svc.pageSize)
		assert.Equal(t, 5, svc.maxPages)
		assert.Equal(t, directory, svc.marketplaces)
	})
}

func TestService_FetchSales(t *testing.T) {
	t.Run("returns records strictly before the watermark match", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(5))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 1, PageSize: 5}).
			Return([]FeedRecord{
				record("sig-5", 500),
				record("sig-4", 400),
				record("sig-3", 300),
				record("sig-2", 200),
			}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{TxID: "sig-3"})

		require.NoError(t, err)
		assert.Equal(t, []string{"sig-5", "sig-4"}, txIDs(sales))
	})

	t.Run("walks pages until a record falls below the timestamp floor", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(2), WithMaxPages(3))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 1, PageSize: 2}).
			Return([]FeedRecord{record("sig-5", 500), record("sig-4", 400)}, nil).
			Once()
		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 2, PageSize: 2}).
			Return([]FeedRecord{record("sig-3", 300), record("sig-1", 100)}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{TimestampFloor: 200})

		require.NoError(t, err)
		assert.Equal(t, []string{"sig-5", "sig-4", "sig-3"}, txIDs(sales))
	})

	t.Run("stops after the configured maximum number of pages", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(1), WithMaxPages(2))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 1, PageSize: 1}).
			Return([]FeedRecord{record("sig-5", 500)}, nil).
			Once()
		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 2, PageSize: 1}).
			Return([]FeedRecord{record("sig-4", 400)}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.NoError(t, err)
		assert.Equal(t, []string{"sig-5", "sig-4"}, txIDs(sales))
		feed.AssertNumberOfCalls(t, "FetchSalesPage", 2)
	})

	t.Run("a short page ends the traversal early", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(5), WithMaxPages(3))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 1, PageSize: 5}).
			Return([]FeedRecord{record("sig-5", 500), record("sig-4", 400)}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.NoError(t, err)
		assert.Equal(t, []string{"sig-5", "sig-4"}, txIDs(sales))
		feed.AssertNumberOfCalls(t, "FetchSalesPage", 1)
	})

	t.Run("an empty feed returns no sales", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares")

		feed.EXPECT().
			FetchSalesPage(mock.Anything, mock.Anything).
			Return(nil, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{TxID: "sig-1"})

		require.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("a page fetch failure aborts the traversal with no partial result", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(1), WithMaxPages(3))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 1, PageSize: 1}).
			Return([]FeedRecord{record("sig-5", 500)}, nil).
			Once()

		feedErr := errors.New("upstream unavailable")
		feed.EXPECT().
			FetchSalesPage(mock.Anything, PageQuery{ProjectID: "lifinity_flares", PageNumber: 2, PageSize: 1}).
			Return(nil, feedErr).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.Error(t, err)
		assert.ErrorIs(t, err, feedErr)
		assert.Contains(t, err.Error(), "page 2")
		assert.Nil(t, sales)
	})

	t.Run("rejects a feed that is not newest-first", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(3))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, mock.Anything).
			Return([]FeedRecord{record("sig-4", 400), record("sig-5", 500)}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		assert.ErrorIs(t, err, ErrFeedOutOfOrder)
		assert.Nil(t, sales)
	})

	t.Run("accepts equal timestamps between adjacent records", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithPageSize(5))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, mock.Anything).
			Return([]FeedRecord{record("sig-5", 500), record("sig-4", 500)}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.NoError(t, err)
		assert.Equal(t, []string{"sig-5", "sig-4"}, txIDs(sales))
	})

	t.Run("normalizes records and resolves marketplace metadata", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		directory := marketdir.NewDirectory([]marketdir.Marketplace{
			{DisplayName: "Magic Eden", ProgramID: "prog-1", InstanceID: "", SiteURL: "https://magiceden.io"},
		})
		svc := New(feed, "lifinity_flares", WithMarketplaceResolver(directory))

		price := decimal.NewFromFloat(12.5)
		feed.EXPECT().
			FetchSalesPage(mock.Anything, mock.Anything).
			Return([]FeedRecord{{
				NFTName:  "Lifinity Flare #1234",
				ImageURL: "https://img.example/1234.webp",
				State: MarketplaceState{
					Signature:      "sig-5",
					BlockTimestamp: 500,
					BuyerHandle:    "alice",
					SellerHandle:   "bob",
					Price:          price,
					ProgramID:      "prog-1",
				},
			}}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.NoError(t, err)
		require.Len(t, sales, 1)

		sale := sales[0]
		assert.Equal(t, "sig-5", sale.TxID)
		assert.Equal(t, "1234", sale.NFTID)
		assert.Equal(t, "https://img.example/1234.webp", sale.ImageURL)
		assert.Equal(t, "alice", sale.BuyerHandle)
		assert.Equal(t, "bob", sale.SellerHandle)
		assert.True(t, price.Equal(sale.Price))
		assert.Equal(t, int64(500), sale.Timestamp)
		require.NotNil(t, sale.Marketplace)
		assert.Equal(t, "Magic Eden", sale.Marketplace.DisplayName)
	})

	t.Run("leaves marketplace nil when the pair does not resolve", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "lifinity_flares", WithMarketplaceResolver(marketdir.NewDirectory(nil)))

		feed.EXPECT().
			FetchSalesPage(mock.Anything, mock.Anything).
			Return([]FeedRecord{record("sig-5", 500)}, nil).
			Once()

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Nil(t, sales[0].Marketplace)
	})

	t.Run("rejects an invalid page query", func(t *testing.T) {
		feed := NewFeedSourceMock(t)
		svc := New(feed, "")

		sales, err := svc.FetchSales(context.Background(), StopCondition{})

		require.Error(t, err)
		assert.Nil(t, sales)
	})
}
