package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/flarebot/saleswatch/internal/saleswatch"

	"github.com/redis/go-redis/v9"
)

// saleswatchKeyPrefix is the namespace prefix for all keys owned by the
// saleswatch cursor.
const saleswatchKeyPrefix = "saleswatch"

// watermarkKey constructs the Redis key holding the latest announced
// transaction id for a collection. The format is:
//
//	"saleswatch:watermark:<projectID>"
func watermarkKey(projectID string) string {
	return fmt.Sprintf("%s:watermark:%s", saleswatchKeyPrefix, projectID)
}

// WatermarkCursor is a persisted watermark bound to one collection. It
// implements both the source and recorder halves of the saleswatch
// watermark contract, making the service robust against posts being deleted
// or edited out of band on the publish platform.
type WatermarkCursor struct {
	conn      *redis.Client
	projectID string
}

// WatermarkCursor returns a persisted watermark cursor for the given
// collection.
func (c *client) WatermarkCursor(projectID string) *WatermarkCursor {
	return &WatermarkCursor{
		conn:      c.conn,
		projectID: projectID,
	}
}

// RecordAnnouncedTx overwrites the cursor with the given transaction id.
// The key is stored with no expiration.
func (w *WatermarkCursor) RecordAnnouncedTx(ctx context.Context, txID string) error {
	return w.conn.Set(ctx, watermarkKey(w.projectID), txID, 0).Err()
}

// LatestAnnouncedTx returns the most recently recorded transaction id. If no
// cursor exists yet, it returns saleswatch.ErrNoWatermarkFound.
func (w *WatermarkCursor) LatestAnnouncedTx(ctx context.Context) (string, error) {
	txID, err := w.conn.Get(ctx, watermarkKey(w.projectID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = saleswatch.ErrNoWatermarkFound
		}

		return "", err
	}

	return txID, nil
}

// Compile-time assertions to ensure WatermarkCursor implements both halves
// of the watermark contract.
var (
	_ saleswatch.WatermarkSource   = (*WatermarkCursor)(nil)
	_ saleswatch.WatermarkRecorder = (*WatermarkCursor)(nil)
)
