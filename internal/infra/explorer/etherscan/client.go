// Package etherscan implements the txsync.TransactionSource interface for
// Etherscan-compatible block explorer APIs. Etherscan and Polygonscan share
// the same request and response shapes, so one client serves both networks,
// parameterized by base URL and API key.
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

	"github.com/hashicorp/go-retryablehttp"
)

// Public explorer endpoints for the supported networks.
const (
	EthereumBaseURL = "https://api.etherscan.io/api"
	PolygonBaseURL  = "https://api.polygonscan.com/api"
)

// ErrUnexpectedStatus indicates the explorer answered with a non-2xx HTTP status.
var ErrUnexpectedStatus = errors.New("explorer returned unexpected HTTP status")

// ErrExplorerError indicates the explorer answered 200 but reported an error,
// or returned a payload that does not contain a transaction list. Etherscan
// packs error details into the same `result` field that normally carries the
// transaction array, so both shapes are mapped to this error.
var ErrExplorerError = errors.New("explorer reported an error")

type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	apiKey     string
}

var _ txsync.TransactionSource = (*client)(nil)

// NewClient creates an explorer client for one network. baseURL must be the
// API root (e.g., EthereumBaseURL) and apiKey the per-network credential.
func NewClient(httpClient *retryablehttp.Client, baseURL, apiKey string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchTransactions implements the txsync.TransactionSource interface. It
// queries the explorer's txlist action sorted newest-first and maps the raw
// response into domain transactions. An address with no activity yields an
// empty slice; malformed or error-shaped responses yield an error the caller
// degrades to an empty list.
func (c *client) FetchTransactions(ctx context.Context, address string) ([]txsync.Transaction, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", c.txListURL(address), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data txListResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExplorerError, err)
	}

	return data.transactions()
}

// txListURL builds the query URL for the account txlist action.
func (c *client) txListURL(address string) string {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", address)
	params.Set("sort", "desc")
	params.Set("apikey", c.apiKey)

	return c.baseURL + "?" + params.Encode()
}
