// Package coingecko implements the txsync.PriceSource interface on top of
// the CoinGecko simple price API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public CoinGecko API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// vsCurrency is the fiat currency rates are requested in.
const vsCurrency = "usd"

// ErrUnexpectedStatus indicates the price API answered with a non-2xx HTTP status.
var ErrUnexpectedStatus = errors.New("price API returned unexpected HTTP status")

type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	tokenIDs   []string
}

var _ txsync.PriceSource = (*client)(nil)

// NewClient creates a price client that fetches USD rates for the given
// CoinGecko token identifiers (e.g., "ethereum", "polygon") in one call.
func NewClient(httpClient *retryablehttp.Client, baseURL string, tokenIDs []string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokenIDs:   tokenIDs,
	}
}

// FetchPrices implements the txsync.PriceSource interface. Tokens the API
// does not report a USD rate for are absent from the returned snapshot.
func (c *client) FetchPrices(ctx context.Context) (txsync.PriceSnapshot, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", c.simplePriceURL(), nil)
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

	// Response shape: {"ethereum": {"usd": 2000.0}, "polygon": {"usd": 0.5}}
	var data map[string]map[string]float64
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	snapshot := make(txsync.PriceSnapshot, len(data))
	for tokenID, rates := range data {
		if rate, ok := rates[vsCurrency]; ok {
			snapshot[tokenID] = decimal.NewFromFloat(rate)
		}
	}

	return snapshot, nil
}

// simplePriceURL builds the simple price query for all configured tokens.
func (c *client) simplePriceURL() string {
	params := url.Values{}
	params.Set("ids", strings.Join(c.tokenIDs, ","))
	params.Set("vs_currencies", vsCurrency)

	return c.baseURL + "/simple/price?" + params.Encode()
}
