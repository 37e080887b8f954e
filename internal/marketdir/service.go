// Package marketdir maintains the marketplace directory: a refreshable
// snapshot of marketplace metadata persisted to a local file and loaded once
// at startup into an in-memory lookup table.
//
// The directory is never refreshed during the polling loop's lifetime; a
// stale directory is an accepted limitation.
package marketdir

import (
	"context"

	"github.com/flarebot/saleswatch/internal/pkg/resilience/retry"
)

// Service defines the marketplace directory lifecycle operations.
type Service interface {
	// Regenerate fetches the current marketplace list from the snapshot
	// source and persists it to the snapshot store, replacing any previous
	// snapshot.
	Regenerate(ctx context.Context) error

	// Load reads the persisted snapshot and builds the in-memory Directory.
	// It returns ErrNoSnapshotFound (wrapped) when no snapshot exists yet.
	Load(ctx context.Context) (Directory, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	source SnapshotSource
	store  SnapshotStore

	retry retry.Retry
}

var _ Service = (*service)(nil)

// Regenerate implements the Service interface. When a retry policy is
// configured the fetch is retried; persistence is attempted once.
func (s *service) Regenerate(ctx context.Context) error {
	var marketplaces []Marketplace

	fetch := func() error {
		var err error
		marketplaces, err = s.source.FetchMarketplaces(ctx)
		return err
	}

	var err error
	if s.retry != nil {
		err = s.retry.Execute(ctx, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return err
	}

	return s.store.SaveSnapshot(ctx, marketplaces)
}

// Load implements the Service interface.
func (s *service) Load(ctx context.Context) (Directory, error) {
	marketplaces, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		return Directory{}, err
	}

	return NewDirectory(marketplaces), nil
}

// config holds construction options for the marketdir service.
type config struct {
	retry retry.Retry
}

// Option configures the marketdir service.
type Option func(*config)

// WithRetry sets the retry policy applied to snapshot source fetches.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New creates a marketdir service over the given snapshot source and store.
func New(source SnapshotSource, store SnapshotStore, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source: source,
		store:  store,
		retry:  cfg.retry,
	}
}
