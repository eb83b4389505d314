// Package txsync implements the transaction ingestion and valuation pipeline.
// It discovers a wallet's outgoing transactions on the supported networks,
// converts each native-unit amount into a fiat amount using a per-run price
// snapshot, and hands one record per transaction to the configured sink.
package txsync

import "time"

// Network describes one supported blockchain network and the constants
// needed to value and label its native-token transactions.
type Network struct {
	Name     string // display name, also used as the sink's select value (e.g., "Ethereum")
	Token    string // native token symbol (e.g., "ETH")
	PriceID  string // identifier under which the price source reports the token rate
	Decimals int32  // number of decimal places between the smallest native unit and one whole token
}

// Supported networks. Both use 18-decimal native units.
var (
	Ethereum = Network{Name: "Ethereum", Token: "ETH", PriceID: "ethereum", Decimals: 18}
	Polygon  = Network{Name: "Polygon", Token: "MATIC", PriceID: "polygon", Decimals: 18}
)

// Transaction represents a single transaction as reported by a network's
// explorer API, reduced to the fields the pipeline consumes.
type Transaction struct {
	Hash      string    // Unique transaction hash identifier
	From      string    // Sender address
	To        string    // Recipient address
	Value     string    // Amount transferred, integer string in the smallest native unit
	Timestamp time.Time // Time the transaction was included on chain
	Failed    bool      // Whether the explorer flagged the transaction as failed
}
