package etherscan

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/kevinosminski/crypto-notion-tracker/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x7C2D3d3C10C21d0c5BabE101Bf30aED822f227d6"

func TestFetchTransactions(t *testing.T) {
	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(time.Second),
		transporthttp.WithRetryMax(0),
	)

	t.Run("maps a successful txlist response to domain transactions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "account", q.Get("module"))
			assert.Equal(t, "txlist", q.Get("action"))
			assert.Equal(t, testAddress, q.Get("address"))
			assert.Equal(t, "desc", q.Get("sort"))
			assert.Equal(t, "test-key", q.Get("apikey"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "1",
				"message": "OK",
				"result": [
					{
						"blockNumber": "19423999",
						"timeStamp": "1710495000",
						"hash": "0xabc",
						"from": "0x7c2d3d3c10c21d0c5babe101bf30aed822f227d6",
						"to": "0xdef",
						"value": "1000000000000000000",
						"isError": "0",
						"txreceipt_status": "1"
					},
					{
						"blockNumber": "19423998",
						"timeStamp": "1710494000",
						"hash": "0x123",
						"from": "0x999",
						"to": "0x7c2d3d3c10c21d0c5babe101bf30aed822f227d6",
						"value": "0",
						"isError": "1",
						"txreceipt_status": "0"
					}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-key")

		txs, err := client.FetchTransactions(t.Context(), testAddress)

		require.NoError(t, err)
		require.Len(t, txs, 2)

		assert.Equal(t, "0xabc", txs[0].Hash)
		assert.Equal(t, "0x7c2d3d3c10c21d0c5babe101bf30aed822f227d6", txs[0].From)
		assert.Equal(t, "0xdef", txs[0].To)
		assert.Equal(t, "1000000000000000000", txs[0].Value)
		assert.Equal(t, time.Unix(1710495000, 0), txs[0].Timestamp)
		assert.False(t, txs[0].Failed)

		assert.True(t, txs[1].Failed)
	})

	t.Run("empty result array yields an empty slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "0", "message": "No transactions found", "result": []}`))
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-key")

		txs, err := client.FetchTransactions(t.Context(), testAddress)

		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("error string in result maps to ErrExplorerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "0", "message": "NOTOK", "result": "Invalid API Key"}`))
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "bad-key")

		_, err := client.FetchTransactions(t.Context(), testAddress)

		assert.ErrorIs(t, err, ErrExplorerError)
		assert.ErrorContains(t, err, "Invalid API Key")
	})

	t.Run("malformed JSON body maps to ErrExplorerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-key")

		_, err := client.FetchTransactions(t.Context(), testAddress)

		assert.ErrorIs(t, err, ErrExplorerError)
	})

	t.Run("malformed timestamp maps to ErrExplorerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "1", "message": "OK", "result": [{"hash": "0xabc", "timeStamp": "soon"}]}`))
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-key")

		_, err := client.FetchTransactions(t.Context(), testAddress)

		assert.ErrorIs(t, err, ErrExplorerError)
	})

	t.Run("non-2xx status maps to ErrUnexpectedStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-key")

		_, err := client.FetchTransactions(t.Context(), testAddress)

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}
