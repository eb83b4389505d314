package etherscan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"
)

type (
	// transactionResponse represents a raw transaction entry returned by the
	// explorer's account txlist action.
	transactionResponse struct {
		BlockNumber       string `json:"blockNumber"`
		TimeStamp         string `json:"timeStamp"`
		Hash              string `json:"hash"`
		Nonce             string `json:"nonce"`
		BlockHash         string `json:"blockHash"`
		TransactionIndex  string `json:"transactionIndex"`
		From              string `json:"from"`
		To                string `json:"to"`
		Value             string `json:"value"`
		Gas               string `json:"gas"`
		GasPrice          string `json:"gasPrice"`
		IsError           string `json:"isError"`
		TxReceiptStatus   string `json:"txreceipt_status"`
		Input             string `json:"input"`
		ContractAddress   string `json:"contractAddress"`
		CumulativeGasUsed string `json:"cumulativeGasUsed"`
		GasUsed           string `json:"gasUsed"`
		Confirmations     string `json:"confirmations"`
	}

	// txListResponse represents the explorer's response envelope. Result is
	// kept raw because the API returns an array on success and a plain string
	// describing the failure otherwise.
	txListResponse struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Result  json.RawMessage `json:"result"`
	}
)

// toTransaction converts a raw explorer entry into a domain transaction.
// isError uses "0" as the success sentinel; any other value flags a failed
// transaction.
func (t transactionResponse) toTransaction() (txsync.Transaction, error) {
	ts, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return txsync.Transaction{}, fmt.Errorf("invalid timestamp %q in transaction %s: %w", t.TimeStamp, t.Hash, err)
	}

	return txsync.Transaction{
		Hash:      t.Hash,
		From:      t.From,
		To:        t.To,
		Value:     t.Value,
		Timestamp: time.Unix(ts, 0),
		Failed:    t.IsError != "0",
	}, nil
}

// transactions unwraps the response envelope into domain transactions.
//
// The explorer reports "no results" as status "0" with a specific message and
// an empty array, which maps to an empty slice. Any other non-array result
// carries an error description and maps to ErrExplorerError.
func (r txListResponse) transactions() ([]txsync.Transaction, error) {
	var entries []transactionResponse
	if err := json.Unmarshal(r.Result, &entries); err != nil {
		var detail string
		if err := json.Unmarshal(r.Result, &detail); err != nil {
			detail = r.Message
		}

		return nil, fmt.Errorf("%w: %s", ErrExplorerError, detail)
	}

	txs := make([]txsync.Transaction, len(entries))
	for i, entry := range entries {
		tx, err := entry.toTransaction()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExplorerError, err)
		}

		txs[i] = tx
	}

	return txs, nil
}
