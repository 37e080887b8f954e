package announce

import (
	"context"
	"errors"
	"testing"

	"github.com/flarebot/saleswatch/internal/pkg/logger"
	"github.com/flarebot/saleswatch/internal/salesfeed"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init(logger.WithLevel("error"))
}

var testSale = salesfeed.Sale{
	TxID:        "sig-1",
	NFTID:       "1234",
	ImageURL:    "https://img.example/1234.webp",
	BuyerHandle: "alice",
	Price:       decimal.NewFromFloat(12.5),
	Timestamp:   500,
}

func TestNew(t *testing.T) {
	t.Run("creates service with default configuration", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)

		svc := New(publisher, fetcher, transcoder, "lifinity_flares")

		require.NotNil(t, svc)
		assert.Equal(t, publisher, svc.publisher)
		assert.Equal(t, fetcher, svc.fetcher)
		assert.Equal(t, transcoder, svc.transcoder)
		assert.Equal(t, "lifinity_flares", svc.projectID)
		assert.Nil(t, svc.floorPrices)
	})

	t.Run("creates service with floor price source and composer", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)
		floorPrices := NewFloorPriceSourceMock(t)
		composer := MessageComposer{CollectionName: "Lifinity Flare"}

		svc := New(publisher, fetcher, transcoder, "lifinity_flares",
			WithFloorPriceSource(floorPrices),
			WithComposer(composer),
		)

		require.NotNil(t, svc)
		assert.Equal(t, floorPrices, svc.floorPrices)
		assert.Equal(t, composer, svc.composer)
	})
}

func TestService_Announce(t *testing.T) {
	t.Run("publishes a rich post when the media chain succeeds", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)

		raw := []byte("raw-image")
		media := Media{Data: []byte("gif-bytes"), MIMEType: "image/gif"}

		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).Return(raw, nil).Once()
		transcoder.EXPECT().TranscodeToSquareGIF(mock.Anything, raw).Return(media, nil).Once()
		publisher.EXPECT().PublishWithMedia(mock.Anything, mock.AnythingOfType("string"), media).Return(nil).Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares")

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomePublishedRich, outcome)
		publisher.AssertNotCalled(t, "PublishText", mock.Anything, mock.Anything)
	})

	t.Run("falls back to exactly one text post when the image fetch fails", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)

		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).
			Return(nil, errors.New("image host unreachable")).
			Once()
		publisher.EXPECT().PublishText(mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares")

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomePublishedPlain, outcome)
		publisher.AssertNotCalled(t, "PublishWithMedia", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("falls back to a text post when transcoding fails", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)

		raw := []byte("raw-image")
		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).Return(raw, nil).Once()
		transcoder.EXPECT().TranscodeToSquareGIF(mock.Anything, raw).
			Return(Media{}, errors.New("unsupported format")).
			Once()
		publisher.EXPECT().PublishText(mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares")

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomePublishedPlain, outcome)
	})

	t.Run("falls back to a text post when the rich publish fails", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)

		raw := []byte("raw-image")
		media := Media{Data: []byte("gif-bytes"), MIMEType: "image/gif"}

		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).Return(raw, nil).Once()
		transcoder.EXPECT().TranscodeToSquareGIF(mock.Anything, raw).Return(media, nil).Once()
		publisher.EXPECT().PublishWithMedia(mock.Anything, mock.AnythingOfType("string"), media).
			Return(errors.New("media upload rejected")).
			Once()
		publisher.EXPECT().PublishText(mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares")

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomePublishedPlain, outcome)
	})

	t.Run("reports failure without error when both publishes fail", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)

		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).
			Return(nil, errors.New("image host unreachable")).
			Once()
		publisher.EXPECT().PublishText(mock.Anything, mock.AnythingOfType("string")).
			Return(errors.New("rate limited")).
			Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares")

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomeFailed, outcome)
	})

	t.Run("decorates the message with the floor price when the lookup succeeds", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)
		floorPrices := NewFloorPriceSourceMock(t)

		floorPrices.EXPECT().FloorPrice(mock.Anything, "lifinity_flares").
			Return(decimal.NewFromFloat(3.456), nil).
			Once()

		var published string
		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).Return([]byte("raw"), nil).Once()
		transcoder.EXPECT().TranscodeToSquareGIF(mock.Anything, []byte("raw")).Return(Media{}, nil).Once()
		publisher.EXPECT().PublishWithMedia(mock.Anything, mock.AnythingOfType("string"), Media{}).
			Run(func(ctx context.Context, text string, media Media) {
				published = text
			}).
			Return(nil).
			Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares", WithFloorPriceSource(floorPrices))

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomePublishedRich, outcome)
		assert.Contains(t, published, "(floor ◎3.46)")
	})

	t.Run("omits the floor clause when the lookup fails", func(t *testing.T) {
		publisher := NewPublisherMock(t)
		fetcher := NewMediaFetcherMock(t)
		transcoder := NewMediaTranscoderMock(t)
		floorPrices := NewFloorPriceSourceMock(t)

		floorPrices.EXPECT().FloorPrice(mock.Anything, "lifinity_flares").
			Return(decimal.Decimal{}, errors.New("stats unavailable")).
			Once()

		var published string
		fetcher.EXPECT().FetchImage(mock.Anything, testSale.ImageURL).Return([]byte("raw"), nil).Once()
		transcoder.EXPECT().TranscodeToSquareGIF(mock.Anything, []byte("raw")).Return(Media{}, nil).Once()
		publisher.EXPECT().PublishWithMedia(mock.Anything, mock.AnythingOfType("string"), Media{}).
			Run(func(ctx context.Context, text string, media Media) {
				published = text
			}).
			Return(nil).
			Once()

		svc := New(publisher, fetcher, transcoder, "lifinity_flares", WithFloorPriceSource(floorPrices))

		outcome := svc.Announce(context.Background(), testSale)

		assert.Equal(t, OutcomePublishedRich, outcome)
		assert.NotContains(t, published, "floor")
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "published_rich", OutcomePublishedRich.String())
	assert.Equal(t, "published_plain", OutcomePublishedPlain.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
