package redis

import (
	"context"
	"fmt"

	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"
)

// syncedTxKeyPrefix is the Redis key namespace for synced-transaction
// markers.
const syncedTxKeyPrefix = "txsync"

// syncedTxMarker is the value stored for a transaction that was accepted by
// the sink.
const syncedTxMarker = "done"

// syncedTxKey builds the Redis key marking one transaction as synced.
//
// Format: "txsync:synced:{network}:{txHash}"
func syncedTxKey(network, txHash string) string {
	return fmt.Sprintf("%s:synced:%s:%s", syncedTxKeyPrefix, network, txHash)
}

// AlreadySynced implements the txsync.IdempotencyGuard interface. It reports
// whether a marker exists for the given transaction.
func (c *client) AlreadySynced(ctx context.Context, network, txHash string) (bool, error) {
	n, err := c.conn.Exists(ctx, syncedTxKey(network, txHash)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// MarkSynced implements the txsync.IdempotencyGuard interface. Markers never
// expire: a synced transaction stays synced across runs.
func (c *client) MarkSynced(ctx context.Context, network, txHash string) error {
	return c.conn.Set(ctx, syncedTxKey(network, txHash), syncedTxMarker, 0).Err()
}

var _ txsync.IdempotencyGuard = new(client)
