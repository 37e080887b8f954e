package twitter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/flarebot/saleswatch/internal/announce"
)

// ErrUnexpectedStatus indicates that the Twitter API answered with a
// non-2xx status code.
var ErrUnexpectedStatus = errors.New("twitter api returned unexpected status")

// mediaUploadResponse represents the payload of a media/upload call.
type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

// postForm sends an OAuth1-signed form POST and decodes the JSON response
// into out when out is non-nil.
func (c *client) postForm(ctx context.Context, endpoint string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.conn.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, res.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// uploadMedia uploads an encoded media item and returns its media id.
func (c *client) uploadMedia(ctx context.Context, media announce.Media) (string, error) {
	form := url.Values{}
	form.Set("media_data", base64.StdEncoding.EncodeToString(media.Data))
	form.Set("media_category", "tweet_gif")

	var uploaded mediaUploadResponse
	if err := c.postForm(ctx, c.uploadBaseURL+"/media/upload.json", form, &uploaded); err != nil {
		return "", err
	}

	return uploaded.MediaIDString, nil
}

// PublishText implements the announce.Publisher interface. It creates a
// text-only post.
func (c *client) PublishText(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("status", text)

	return c.postForm(ctx, c.apiBaseURL+"/statuses/update.json", form, nil)
}

// PublishWithMedia implements the announce.Publisher interface. It uploads
// the media item and creates a post with the media attached.
func (c *client) PublishWithMedia(ctx context.Context, text string, media announce.Media) error {
	mediaID, err := c.uploadMedia(ctx, media)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("status", text)
	form.Set("media_ids", mediaID)

	return c.postForm(ctx, c.apiBaseURL+"/statuses/update.json", form, nil)
}

// Compile-time assertion to ensure client implements the Publisher interface.
var _ announce.Publisher = (*client)(nil)
