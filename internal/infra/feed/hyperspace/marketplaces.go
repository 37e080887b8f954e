package hyperspace

import (
	"context"
	"encoding/json"

	"github.com/flarebot/saleswatch/internal/marketdir"
)

// getMarketplaceStatusQuery lists every marketplace known to the API.
const getMarketplaceStatusQuery = `
query GetMarketplaceStatus {
  getMarketPlaceStatus {
    mps {
      display_name
      marketplace_program_id
      marketplace_instance_id
      website
    }
  }
}`

type (
	// marketplaceResponse represents one marketplace status entry.
	marketplaceResponse struct {
		DisplayName           string `json:"display_name"`
		MarketplaceProgramID  string `json:"marketplace_program_id"`
		MarketplaceInstanceID string `json:"marketplace_instance_id"`
		Website               string `json:"website"`
	}

	// getMarketplaceStatusResponse represents the marketplace status payload.
	getMarketplaceStatusResponse struct {
		GetMarketPlaceStatus struct {
			MPs []marketplaceResponse `json:"mps"`
		} `json:"getMarketPlaceStatus"`
	}
)

// toMarketplace converts a status entry into the marketdir domain model.
func (m marketplaceResponse) toMarketplace() marketdir.Marketplace {
	return marketdir.Marketplace{
		DisplayName: m.DisplayName,
		ProgramID:   m.MarketplaceProgramID,
		InstanceID:  m.MarketplaceInstanceID,
		SiteURL:     m.Website,
	}
}

// FetchMarketplaces implements the marketdir.SnapshotSource interface.
func (c *client) FetchMarketplaces(ctx context.Context) ([]marketdir.Marketplace, error) {
	data, err := c.conn.Query(ctx, getMarketplaceStatusQuery, nil)
	if err != nil {
		return nil, err
	}

	var status getMarketplaceStatusResponse
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}

	marketplaces := make([]marketdir.Marketplace, len(status.GetMarketPlaceStatus.MPs))
	for i, mp := range status.GetMarketPlaceStatus.MPs {
		marketplaces[i] = mp.toMarketplace()
	}

	return marketplaces, nil
}

// Compile-time assertion to ensure client implements the SnapshotSource interface.
var _ marketdir.SnapshotSource = (*client)(nil)
