package txsync

import "strings"

// filterOutgoing reduces a transaction list to the subsequence originated by
// the watched address and not flagged as failed. Address comparison is
// case-insensitive because explorers report mixed-case hex addresses. The
// result preserves input order and performs no deduplication; it depends only
// on its inputs.
func filterOutgoing(address string, txs []Transaction) []Transaction {
	outgoing := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if strings.EqualFold(tx.From, address) && !tx.Failed {
			outgoing = append(outgoing, tx)
		}
	}

	return outgoing
}
