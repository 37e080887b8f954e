package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/flarebot/saleswatch/internal/saleswatch"
)

// txPathMarker separates the explorer base URL from the transaction id in
// the reference link every announcement carries.
const txPathMarker = "/tx/"

// timelineEntry represents one post of a user timeline response, reduced to
// the URL entities the watermark is parsed from.
type timelineEntry struct {
	Entities struct {
		URLs []struct {
			ExpandedURL string `json:"expanded_url"`
		} `json:"urls"`
	} `json:"entities"`
}

// LatestAnnouncedTx implements the saleswatch.WatermarkSource interface. It
// reads the account's most recent post and parses the transaction id from
// the embedded explorer link. When no post exists or no link matches the
// expected ".../tx/<txId>" pattern it returns ErrNoWatermarkFound.
func (c *client) LatestAnnouncedTx(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("screen_name", c.accountHandle)
	query.Set("count", "1")
	query.Set("tweet_mode", "extended")

	endpoint := c.apiBaseURL + "/statuses/user_timeline.json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	res, err := c.conn.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, res.StatusCode, string(body))
	}

	var timeline []timelineEntry
	if err := json.NewDecoder(res.Body).Decode(&timeline); err != nil {
		return "", err
	}

	if len(timeline) == 0 {
		return "", saleswatch.ErrNoWatermarkFound
	}

	for _, entityURL := range timeline[0].Entities.URLs {
		if _, txID, ok := strings.Cut(entityURL.ExpandedURL, txPathMarker); ok && txID != "" {
			return txID, nil
		}
	}

	return "", saleswatch.ErrNoWatermarkFound
}

// Compile-time assertion to ensure client implements the WatermarkSource interface.
var _ saleswatch.WatermarkSource = (*client)(nil)
