package twitter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flarebot/saleswatch/internal/saleswatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LatestAnnouncedTx(t *testing.T) {
	t.Run("parses the transaction id from the latest post", func(t *testing.T) {
		var query map[string][]string
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/statuses/user_timeline.json", r.URL.Path)
			query = r.URL.Query()
			w.Write([]byte(`[
				{
					"entities": {
						"urls": [
							{"expanded_url": "https://solscan.io/tx/sig-42"}
						]
					}
				}
			]`))
		}))
		defer api.Close()

		c := testClient(api, nil)

		txID, err := c.LatestAnnouncedTx(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "sig-42", txID)
		assert.Equal(t, []string{"flarebot"}, query["screen_name"])
		assert.Equal(t, []string{"1"}, query["count"])
		assert.Equal(t, []string{"extended"}, query["tweet_mode"])
	})

	t.Run("skips unrelated links and still finds the explorer one", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{
					"entities": {
						"urls": [
							{"expanded_url": "https://magiceden.io/collections/flares"},
							{"expanded_url": "https://solscan.io/tx/sig-42"}
						]
					}
				}
			]`))
		}))
		defer api.Close()

		c := testClient(api, nil)

		txID, err := c.LatestAnnouncedTx(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "sig-42", txID)
	})

	t.Run("an empty timeline yields ErrNoWatermarkFound", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer api.Close()

		c := testClient(api, nil)

		_, err := c.LatestAnnouncedTx(context.Background())

		assert.ErrorIs(t, err, saleswatch.ErrNoWatermarkFound)
	})

	t.Run("a post without an explorer link yields ErrNoWatermarkFound", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"entities":{"urls":[{"expanded_url":"https://example.com"}]}}]`))
		}))
		defer api.Close()

		c := testClient(api, nil)

		_, err := c.LatestAnnouncedTx(context.Background())

		assert.ErrorIs(t, err, saleswatch.ErrNoWatermarkFound)
	})

	t.Run("surfaces a non-200 status as ErrUnexpectedStatus", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer api.Close()

		c := testClient(api, nil)

		_, err := c.LatestAnnouncedTx(context.Background())

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}
