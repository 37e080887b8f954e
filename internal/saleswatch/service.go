// Package saleswatch orchestrates the unending announcement loop: resolve
// the watermark, walk the sales feed down to it, reverse the result into
// chronological order, announce each sale sequentially, then sleep a fixed
// interval and start over.
//
// Everything within a cycle runs on a single logical thread of control; there
// is no concurrent fetching of pages, no concurrent publishing of items, and
// no parallelism across cycles. A failed traversal skips the cycle but never
// stops the scheduler.
package saleswatch

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/flarebot/saleswatch/internal/announce"
	"github.com/flarebot/saleswatch/internal/pkg/logger"
	"github.com/flarebot/saleswatch/internal/salesfeed"

	"github.com/google/uuid"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// defaultFetchInterval is the sleep between cycles when none is configured.
const defaultFetchInterval = time.Minute

// Service defines the saleswatch lifecycle entrypoint.
type Service interface {
	// Start launches the polling loop in the background. The first cycle
	// runs immediately; subsequent cycles run after each fixed sleep.
	// Canceling ctx or calling Close stops the loop.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) error

	// Close stops the polling loop. It is safe to call Close even if the
	// service was never started.
	Close()
}

// closeFunc defines a cleanup routine to stop the background loop.
type closeFunc func()

// service is the concrete implementation of the Service interface.
type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // ensures Start is called only once
	closeFunc closeFunc  // cancels the loop context

	feed      salesfeed.Service
	announcer announce.Service

	watermarks WatermarkSource
	recorder   WatermarkRecorder

	fetchInterval  time.Duration
	timestampFloor int64
}

var _ Service = (*service)(nil)

// Start implements the Service interface.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	go s.run(ctx)

	s.closeFunc = closeFunc(cancel)
	s.isStarted = true
	return nil
}

// Close implements the Service interface.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// run executes cycles until ctx is canceled, sleeping the configured fixed
// interval between the end of one cycle and the start of the next.
func (s *service) run(ctx context.Context) {
	for {
		s.runCycle(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.fetchInterval):
		}
	}
}

// runCycle performs one full fetch-and-publish cycle. Traversal failures are
// logged and abandon the cycle; they are deliberately not propagated so the
// scheduler keeps running.
func (s *service) runCycle(ctx context.Context) {
	cycleID := uuid.NewString()
	logger.Info(ctx, "starting fetch cycle", "cycle_id", cycleID)

	stop := s.resolveStopCondition(ctx, cycleID)

	sales, err := s.feed.FetchSales(ctx, stop)
	if err != nil {
		logger.Error(ctx, "sales traversal failed, skipping cycle",
			"cycle_id", cycleID,
			"error", err,
		)
		return
	}

	// The feed returns newest-first; announcements must go out in
	// chronological sale order.
	slices.Reverse(sales)

	var published int
	for _, sale := range sales {
		outcome := s.announcer.Announce(ctx, sale)
		logger.Info(ctx, "sale processed",
			"cycle_id", cycleID,
			"sale.tx_id", sale.TxID,
			"sale.nft_id", sale.NFTID,
			"outcome", outcome.String(),
		)

		if outcome == announce.OutcomeFailed {
			continue
		}
		published++

		if err := s.recorder.RecordAnnouncedTx(ctx, sale.TxID); err != nil {
			logger.Warn(ctx, "recording watermark failed",
				"cycle_id", cycleID,
				"sale.tx_id", sale.TxID,
				"error", err,
			)
		}
	}

	logger.Info(ctx, "fetch cycle finished",
		"cycle_id", cycleID,
		"sales.fetched", len(sales),
		"sales.published", published,
	)
}

// resolveStopCondition combines the configured timestamp floor with the
// watermark lookup. A failed lookup only degrades the stop condition to its
// timestamp half; it never aborts the cycle.
func (s *service) resolveStopCondition(ctx context.Context, cycleID string) salesfeed.StopCondition {
	stop := salesfeed.StopCondition{TimestampFloor: s.timestampFloor}

	txID, err := s.watermarks.LatestAnnouncedTx(ctx)
	switch {
	case err == nil:
		stop.TxID = txID
	case errors.Is(err, ErrNoWatermarkFound):
		logger.Info(ctx, "no watermark yet, using timestamp floor only", "cycle_id", cycleID)
	default:
		logger.Warn(ctx, "watermark lookup failed, using timestamp floor only",
			"cycle_id", cycleID,
			"error", err,
		)
	}

	return stop
}

// config holds construction options for the saleswatch service.
type config struct {
	recorder       WatermarkRecorder
	fetchInterval  time.Duration
	timestampFloor int64
}

// Option configures the saleswatch service.
type Option func(*config)

// WithFetchInterval sets the fixed sleep between cycles. Default: 1 minute.
func WithFetchInterval(d time.Duration) Option {
	return func(c *config) {
		c.fetchInterval = d
	}
}

// WithTimestampFloor sets the absolute epoch floor (seconds) below which
// feed records are never announced. A non-positive floor disables the check.
func WithTimestampFloor(seconds int64) Option {
	return func(c *config) {
		c.timestampFloor = seconds
	}
}

// WithWatermarkRecorder sets the recorder updated after every successful
// announcement, enabling a persisted-cursor watermark strategy.
func WithWatermarkRecorder(r WatermarkRecorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// New creates a saleswatch service wiring the feed traversal, the announcer
// and the watermark source together.
func New(feed salesfeed.Service, announcer announce.Service, watermarks WatermarkSource, opts ...Option) *service {
	cfg := config{
		recorder:      nopWatermarkRecorder{},
		fetchInterval: defaultFetchInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		feed:           feed,
		announcer:      announcer,
		watermarks:     watermarks,
		recorder:       cfg.recorder,
		fetchInterval:  cfg.fetchInterval,
		timestampFloor: cfg.timestampFloor,
	}
}
