package txsync

import "context"

// IdempotencyGuard tracks which transactions have already been submitted to
// the sink, so repeated runs over the same explorer window do not re-create
// records. It is an optional collaborator: without one configured, every run
// re-submits the latest capped window exactly as the explorer reports it.
type IdempotencyGuard interface {
	// AlreadySynced reports whether the transaction identified by network and
	// hash was marked as synced by a previous run.
	AlreadySynced(ctx context.Context, network, txHash string) (bool, error)

	// MarkSynced durably records that the transaction was submitted to the
	// sink. It must be called only after the sink accepted the record.
	MarkSynced(ctx context.Context, network, txHash string) error
}

// nopIdempotencyGuard is the default guard. It never reports a transaction
// as synced, preserving the re-submit-on-every-run reference behavior.
type nopIdempotencyGuard struct{}

func (nopIdempotencyGuard) AlreadySynced(ctx context.Context, network, txHash string) (bool, error) {
	return false, nil
}

func (nopIdempotencyGuard) MarkSynced(ctx context.Context, network, txHash string) error {
	return nil
}
