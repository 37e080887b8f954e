package hyperspace

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/flarebot/saleswatch/internal/announce"

	"github.com/shopspring/decimal"
)

// ErrProjectStatsNotFound is returned when the stat query matches no project.
var ErrProjectStatsNotFound = errors.New("project stats not found")

// getProjectStatByNameQuery looks up collection statistics by exact project
// name match.
const getProjectStatByNameQuery = `
query GetProjectStatByName($conditions: GetProjectStatByNameCondition!) {
  getProjectStatByName(condition: $conditions) {
    project_stats {
      project_id
      floor_price
    }
  }
}`

// getProjectStatByNameResponse represents the project stat payload.
type getProjectStatByNameResponse struct {
	GetProjectStatByName struct {
		ProjectStats []struct {
			ProjectID  string  `json:"project_id"`
			FloorPrice float64 `json:"floor_price"`
		} `json:"project_stats"`
	} `json:"getProjectStatByName"`
}

// FloorPrice implements the announce.FloorPriceSource interface. It returns
// the lowest current listed price for the project.
func (c *client) FloorPrice(ctx context.Context, projectID string) (decimal.Decimal, error) {
	variables := map[string]any{
		"conditions": map[string]any{
			"matchName": map[string]any{
				"operation": "EXACT",
				"value":     projectID,
			},
		},
	}

	data, err := c.conn.Query(ctx, getProjectStatByNameQuery, variables)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var stats getProjectStatByNameResponse
	if err := json.Unmarshal(data, &stats); err != nil {
		return decimal.Decimal{}, err
	}

	projectStats := stats.GetProjectStatByName.ProjectStats
	if len(projectStats) == 0 {
		return decimal.Decimal{}, ErrProjectStatsNotFound
	}

	return decimal.NewFromFloat(projectStats[0].FloorPrice), nil
}

// Compile-time assertion to ensure client implements the FloorPriceSource interface.
var _ announce.FloorPriceSource = (*client)(nil)
