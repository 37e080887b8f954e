// Package gif prepares announcement media: it fetches the source image over
// HTTP and transcodes it into the square, bounded-resolution GIF the publish
// platform accepts.
package gif

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/flarebot/saleswatch/internal/announce"
)

// ErrImageFetchFailed indicates that the image server answered with a
// non-200 status code.
var ErrImageFetchFailed = errors.New("image fetch failed")

// maxImageBytes caps how much image data is read from the source. Images
// larger than this are truncated-rejected rather than buffered whole.
const maxImageBytes = 15 << 20 // 15 MiB

// fetcher retrieves image bytes over HTTP.
type fetcher struct {
	httpClient *http.Client
}

// Compile-time assertion to ensure fetcher implements the MediaFetcher interface.
var _ announce.MediaFetcher = (*fetcher)(nil)

// NewFetcher creates a MediaFetcher downloading images with the given HTTP
// client.
func NewFetcher(httpClient *http.Client) *fetcher {
	return &fetcher{
		httpClient: httpClient,
	}
}

// FetchImage implements the announce.MediaFetcher interface.
func (f *fetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrImageFetchFailed, res.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", ErrImageFetchFailed, maxImageBytes)
	}

	return data, nil
}
