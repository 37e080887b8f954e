package hyperspace

import (
	"context"
	"encoding/json"

	"github.com/flarebot/saleswatch/internal/salesfeed"

	"github.com/shopspring/decimal"
)

// transactionActionType filters the project history down to completed sales.
const transactionActionType = "TRANSACTION"

// getProjectHistoryQuery retrieves one page of marketplace activity for a
// project, newest-first.
const getProjectHistoryQuery = `
query GetProjectHistory($conditions: GetProjectHistoryCondition!, $paginationInfo: PaginationConfig) {
  getProjectHistory(condition: $conditions, pagination_info: $paginationInfo) {
    market_place_snapshots {
      name
      full_img
      market_place_state {
        signature
        block_timestamp
        price
        marketplace_program_id
        marketplace_instance_id
        metadata {
          buyer_twitter
          seller_twitter
        }
      }
    }
  }
}`

type (
	// marketPlaceStateResponse mirrors the market_place_state object of a
	// project history snapshot.
	marketPlaceStateResponse struct {
		Signature             string  `json:"signature"`
		BlockTimestamp        int64   `json:"block_timestamp"`
		Price                 float64 `json:"price"`
		MarketplaceProgramID  string  `json:"marketplace_program_id"`
		MarketplaceInstanceID string  `json:"marketplace_instance_id"`
		Metadata              struct {
			BuyerTwitter  string `json:"buyer_twitter"`
			SellerTwitter string `json:"seller_twitter"`
		} `json:"metadata"`
	}

	// snapshotResponse represents one raw sale record of a history page.
	snapshotResponse struct {
		Name             string                   `json:"name"`
		FullImg          string                   `json:"full_img"`
		MarketPlaceState marketPlaceStateResponse `json:"market_place_state"`
	}

	// getProjectHistoryResponse represents the full history page payload.
	getProjectHistoryResponse struct {
		GetProjectHistory struct {
			MarketPlaceSnapshots []snapshotResponse `json:"market_place_snapshots"`
		} `json:"getProjectHistory"`
	}
)

// toFeedRecord converts a raw snapshot into the salesfeed wire model.
func (s snapshotResponse) toFeedRecord() salesfeed.FeedRecord {
	return salesfeed.FeedRecord{
		NFTName:  s.Name,
		ImageURL: s.FullImg,
		State: salesfeed.MarketplaceState{
			Signature:      s.MarketPlaceState.Signature,
			BlockTimestamp: s.MarketPlaceState.BlockTimestamp,
			BuyerHandle:    s.MarketPlaceState.Metadata.BuyerTwitter,
			SellerHandle:   s.MarketPlaceState.Metadata.SellerTwitter,
			Price:          decimal.NewFromFloat(s.MarketPlaceState.Price),
			ProgramID:      s.MarketPlaceState.MarketplaceProgramID,
			InstanceID:     s.MarketPlaceState.MarketplaceInstanceID,
		},
	}
}

// FetchSalesPage implements the salesfeed.FeedSource interface. It fetches
// one page of TRANSACTION-type records for the queried project, newest-first.
func (c *client) FetchSalesPage(ctx context.Context, query salesfeed.PageQuery) ([]salesfeed.FeedRecord, error) {
	variables := map[string]any{
		"conditions": map[string]any{
			"projects":    []map[string]any{{"project_id": query.ProjectID}},
			"actionTypes": []string{transactionActionType},
		},
		"paginationInfo": map[string]any{
			"page_number": query.PageNumber,
			"page_size":   query.PageSize,
		},
	}

	data, err := c.conn.Query(ctx, getProjectHistoryQuery, variables)
	if err != nil {
		return nil, err
	}

	var page getProjectHistoryResponse
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}

	snapshots := page.GetProjectHistory.MarketPlaceSnapshots
	records := make([]salesfeed.FeedRecord, len(snapshots))
	for i, snapshot := range snapshots {
		records[i] = snapshot.toFeedRecord()
	}

	return records, nil
}

// Compile-time assertion to ensure client implements the FeedSource interface.
var _ salesfeed.FeedSource = (*client)(nil)
