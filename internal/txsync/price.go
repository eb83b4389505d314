package txsync

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceSnapshot maps a price-source token identifier (e.g., "ethereum") to
// its current fiat rate in USD. A snapshot is fetched at most once per run
// and shared read-only across all valuations in that run, so every record
// produced by a single run sees identical exchange rates.
type PriceSnapshot map[string]decimal.Decimal

// Rate returns the USD rate for the given token identifier and whether the
// snapshot contains it. A nil snapshot reports no rates at all.
func (s PriceSnapshot) Rate(priceID string) (decimal.Decimal, bool) {
	rate, ok := s[priceID]
	return rate, ok
}

// PriceSource fetches current fiat exchange rates for the native tokens of
// all supported networks in a single call.
type PriceSource interface {
	// FetchPrices returns a snapshot of current USD rates. Tokens the upstream
	// API did not report are simply absent from the snapshot; valuation for
	// those networks fails with ErrPriceUnavailable rather than with a
	// source-level error.
	FetchPrices(ctx context.Context) (PriceSnapshot, error)
}
