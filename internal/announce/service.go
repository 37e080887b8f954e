// Package announce composes and publishes the social announcement for each
// normalized sale: a rich, media-attached post when the whole
// fetch-transcode-upload chain succeeds, degrading to a text-only post on any
// media failure. An individual item's failure is terminal for that item only
// and never aborts the caller's run.
package announce

import (
	"context"

	"github.com/flarebot/saleswatch/internal/pkg/logger"
	"github.com/flarebot/saleswatch/internal/salesfeed"

	"github.com/shopspring/decimal"
)

// Outcome reports how far the publish pipeline got for one sale.
type Outcome int

const (
	// OutcomeFailed means neither the rich nor the plain publish succeeded.
	OutcomeFailed Outcome = iota

	// OutcomePublishedRich means the media-attached post was created.
	OutcomePublishedRich

	// OutcomePublishedPlain means the text-only fallback post was created.
	OutcomePublishedPlain
)

// String returns a log-friendly name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePublishedRich:
		return "published_rich"
	case OutcomePublishedPlain:
		return "published_plain"
	default:
		return "failed"
	}
}

// Service defines the per-sale publish entrypoint.
type Service interface {
	// Announce composes the announcement for the sale and publishes it,
	// attempting a rich post first and falling back to text-only. It never
	// returns an error: failures are reported through the Outcome and
	// logged, so one item can never block or drop later items.
	Announce(ctx context.Context, sale salesfeed.Sale) Outcome
}

// service is the concrete implementation of the Service interface.
type service struct {
	publisher   Publisher
	fetcher     MediaFetcher
	transcoder  MediaTranscoder
	floorPrices FloorPriceSource

	composer  MessageComposer
	projectID string
}

var _ Service = (*service)(nil)

// Announce implements the Service interface.
func (s *service) Announce(ctx context.Context, sale salesfeed.Sale) Outcome {
	text := s.composer.Compose(sale, s.lookupFloorPrice(ctx))

	if err := s.publishRich(ctx, sale, text); err == nil {
		return OutcomePublishedRich
	} else {
		logger.Warn(ctx, "rich publish failed, falling back to text-only post",
			"sale.tx_id", sale.TxID,
			"error", err,
		)
	}

	if err := s.publisher.PublishText(ctx, text); err != nil {
		logger.Error(ctx, "text-only publish failed, giving up on sale",
			"sale.tx_id", sale.TxID,
			"error", err,
		)
		return OutcomeFailed
	}

	return OutcomePublishedPlain
}

// publishRich runs the media chain: fetch the source image, transcode it to
// the platform's square GIF format, and create the post with the media
// attached. Any failure along the chain is returned for the caller to fall
// back on.
func (s *service) publishRich(ctx context.Context, sale salesfeed.Sale, text string) error {
	image, err := s.fetcher.FetchImage(ctx, sale.ImageURL)
	if err != nil {
		return err
	}

	media, err := s.transcoder.TranscodeToSquareGIF(ctx, image)
	if err != nil {
		return err
	}

	return s.publisher.PublishWithMedia(ctx, text, media)
}

// lookupFloorPrice performs the best-effort floor price lookup. Failures are
// logged and swallowed; the returned nil simply omits the floor clause.
func (s *service) lookupFloorPrice(ctx context.Context) *decimal.Decimal {
	if s.floorPrices == nil {
		return nil
	}

	floor, err := s.floorPrices.FloorPrice(ctx, s.projectID)
	if err != nil {
		logger.Warn(ctx, "floor price lookup failed, omitting floor clause",
			"project_id", s.projectID,
			"error", err,
		)
		return nil
	}

	return &floor
}

// config holds construction options for the announce service.
type config struct {
	floorPrices FloorPriceSource
	composer    MessageComposer
}

// Option configures the announce service.
type Option func(*config)

// WithFloorPriceSource enables the best-effort floor-price clause.
func WithFloorPriceSource(f FloorPriceSource) Option {
	return func(c *config) {
		c.floorPrices = f
	}
}

// WithComposer replaces the message composer used for every announcement.
func WithComposer(m MessageComposer) Option {
	return func(c *config) {
		c.composer = m
	}
}

// New creates an announce service publishing through the given Publisher,
// with media prepared by the fetcher and transcoder.
func New(publisher Publisher, fetcher MediaFetcher, transcoder MediaTranscoder, projectID string, opts ...Option) *service {
	cfg := config{
		composer: MessageComposer{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		publisher:   publisher,
		fetcher:     fetcher,
		transcoder:  transcoder,
		floorPrices: cfg.floorPrices,
		composer:    cfg.composer,
		projectID:   projectID,
	}
}
