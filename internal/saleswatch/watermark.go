package saleswatch

import (
	"context"
	"errors"
)

// ErrNoWatermarkFound is returned by LatestAnnouncedTx when no announcement
// boundary can be established: no posts exist yet, or no persisted cursor
// has been recorded.
var ErrNoWatermarkFound = errors.New("no watermark found")

// WatermarkSource establishes the "already announced up to here" boundary:
// the transaction id of the most recent sale this system has announced.
//
// The source-faithful strategy reads back the account's own latest post and
// parses the transaction id it referenced; a persisted-cursor strategy reads
// a locally recorded id instead.
type WatermarkSource interface {
	// LatestAnnouncedTx returns the transaction id of the most recent
	// announcement, or ErrNoWatermarkFound when none exists.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	LatestAnnouncedTx(ctx context.Context) (string, error)
}

// WatermarkRecorder records each successfully announced transaction id so a
// persisted-cursor WatermarkSource can resume from it.
type WatermarkRecorder interface {
	// RecordAnnouncedTx overwrites the recorded watermark with txID.
	RecordAnnouncedTx(ctx context.Context, txID string) error
}

// nopWatermarkRecorder is the default recorder: the watermark then lives
// only in the publish platform's own history.
type nopWatermarkRecorder struct{}

var _ WatermarkRecorder = nopWatermarkRecorder{}

func (nopWatermarkRecorder) RecordAnnouncedTx(ctx context.Context, txID string) error {
	return nil
}
