package txsync

import "context"

// TransactionSource fetches the most recent transactions recorded for an
// address on a single blockchain network.
type TransactionSource interface {
	// FetchTransactions returns the transaction history for the given address,
	// ordered newest-first as reported by the explorer API. An address with no
	// activity yields an empty slice and a nil error.
	//
	// A non-nil error means the explorer could not be queried or returned a
	// malformed response; callers are expected to treat that network as having
	// no transactions for the current run rather than aborting it.
	FetchTransactions(ctx context.Context, address string) ([]Transaction, error)
}

// NetworkSource pairs a network definition with the source that serves
// its transaction history.
type NetworkSource struct {
	Network Network
	Source  TransactionSource
}
