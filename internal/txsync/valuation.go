package txsync

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// fiatCurrency is the only fiat currency records are valued in.
const fiatCurrency = "USD"

// isoDateLayout formats timestamps as ISO-8601 local time without a UTC
// offset, matching the datastore's date property format.
const isoDateLayout = "2006-01-02T15:04:05"

// ErrPriceUnavailable indicates the price snapshot has no rate for the token
// of the network a transaction was observed on. It is distinct from a
// price-source outage: the snapshot was fetched but lacks a required key.
var ErrPriceUnavailable = errors.New("price unavailable for token")

// valueTransaction converts one filtered transaction into a ValuedRecord
// using the run's price snapshot.
//
// The native amount is the transaction value divided by 10^decimals for the
// network. Values are parsed with arbitrary precision, so amounts beyond the
// 64-bit integer range are never truncated. A zero-value transaction yields a
// fiat amount of zero, which is valid and still emitted.
func valueTransaction(tx Transaction, network Network, prices PriceSnapshot) (ValuedRecord, error) {
	rate, ok := prices.Rate(network.PriceID)
	if !ok {
		return ValuedRecord{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, network.PriceID)
	}

	value, err := decimal.NewFromString(tx.Value)
	if err != nil {
		return ValuedRecord{}, fmt.Errorf("invalid native value %q: %w", tx.Value, err)
	}

	amount := value.Shift(-network.Decimals)

	return ValuedRecord{
		Amount:       amount,
		Token:        network.Token,
		FiatAmount:   amount.Mul(rate),
		FiatCurrency: fiatCurrency,
		Network:      network.Name,
		ToAddress:    tx.To,
		Date:         tx.Timestamp.Format(isoDateLayout),
	}, nil
}
