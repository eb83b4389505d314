package txsync

import (
	"context"

	"github.com/shopspring/decimal"
)

// ValuedRecord is the normalized result of valuing one outgoing transaction.
// It is created per surviving transaction, consumed immediately by the
// RecordSink, and never persisted locally.
type ValuedRecord struct {
	Amount       decimal.Decimal // amount in whole native tokens
	Token        string          `validate:"required"` // native token symbol ("ETH", "MATIC")
	FiatAmount   decimal.Decimal // Amount multiplied by the snapshot rate
	FiatCurrency string          `validate:"required"` // always "USD"
	Network      string          `validate:"required"` // network display name ("Ethereum", "Polygon")
	ToAddress    string          // recipient address of the underlying transaction
	Date         string          `validate:"required"` // ISO-8601 local timestamp of the transaction
}

// RecordSink submits valued transactions to the external datastore.
type RecordSink interface {
	// CreateRecord appends the record as a new row in the datastore. Exactly
	// one remote write is issued per accepted record; there is no
	// read-before-write and no dedup check at this layer. A rejected write
	// (schema mismatch, auth failure, rate limit) is returned as an error so
	// the caller can report it per record without aborting the run.
	CreateRecord(ctx context.Context, record ValuedRecord) error
}
