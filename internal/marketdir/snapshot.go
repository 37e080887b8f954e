package marketdir

import (
	"context"
	"errors"
)

// ErrNoSnapshotFound is returned by LoadSnapshot when no marketplace
// snapshot has been persisted yet.
var ErrNoSnapshotFound = errors.New("no marketplace snapshot found")

// SnapshotSource fetches the current marketplace list from the external
// status capability.
type SnapshotSource interface {
	// FetchMarketplaces returns the full list of known marketplaces.
	//
	// ctx controls cancellation and deadlines for the underlying I/O.
	FetchMarketplaces(ctx context.Context) ([]Marketplace, error)
}

// SnapshotStore persists and retrieves the marketplace snapshot used to
// build the Directory at startup.
type SnapshotStore interface {
	// SaveSnapshot overwrites the persisted snapshot with the given
	// ordered marketplace list.
	SaveSnapshot(ctx context.Context, marketplaces []Marketplace) error

	// LoadSnapshot returns the persisted marketplace list, preserving
	// order. If no snapshot exists it returns ErrNoSnapshotFound.
	LoadSnapshot(ctx context.Context) ([]Marketplace, error)
}
