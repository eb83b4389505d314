package notion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/kevinosminski/crypto-notion-tracker/internal/pkg/transport/http"
	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/validator"
	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() txsync.ValuedRecord {
	return txsync.ValuedRecord{
		Amount:       decimal.NewFromInt(1),
		Token:        "ETH",
		FiatAmount:   decimal.NewFromInt(2000),
		FiatCurrency: "USD",
		Network:      "Ethereum",
		ToAddress:    "0xdef",
		Date:         "2024-03-15T09:30:00",
	}
}

func TestCreateRecord(t *testing.T) {
	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(time.Second),
		transporthttp.WithRetryMax(0),
	)

	t.Run("submits one page with the typed property schema", func(t *testing.T) {
		var captured map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/pages", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-token", "db-123")

		err := client.CreateRecord(t.Context(), testRecord())
		require.NoError(t, err)

		parent, ok := captured["parent"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "db-123", parent["database_id"])

		properties, ok := captured["properties"].(map[string]any)
		require.True(t, ok)

		amount := properties["Amount"].(map[string]any)
		assert.InDelta(t, 1.0, amount["number"], 1e-9)

		fiat := properties["Fiat"].(map[string]any)
		assert.InDelta(t, 2000.0, fiat["number"], 1e-9)

		token := properties["Token"].(map[string]any)
		tokenText := token["rich_text"].([]any)[0].(map[string]any)["text"].(map[string]any)
		assert.Equal(t, "ETH", tokenText["content"])

		network := properties["Network"].(map[string]any)
		assert.Equal(t, "Ethereum", network["select"].(map[string]any)["name"])

		toAddress := properties["To Address"].(map[string]any)
		toText := toAddress["rich_text"].([]any)[0].(map[string]any)["text"].(map[string]any)
		assert.Equal(t, "0xdef", toText["content"])

		date := properties["Date"].(map[string]any)
		assert.Equal(t, "2024-03-15T09:30:00", date["date"].(map[string]any)["start"])

		currency := properties["Fiat Currency"].(map[string]any)
		currencyText := currency["rich_text"].([]any)[0].(map[string]any)["text"].(map[string]any)
		assert.Equal(t, "USD", currencyText["content"])
	})

	t.Run("zero fiat amount is still submitted", func(t *testing.T) {
		var calls int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-token", "db-123")

		record := testRecord()
		record.Amount = decimal.Zero
		record.FiatAmount = decimal.Zero

		require.NoError(t, client.CreateRecord(t.Context(), record))
		assert.Equal(t, 1, calls)
	})

	t.Run("rejection maps to ErrRecordRejected with status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"object":"error","code":"validation_error"}`))
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-token", "db-123")

		err := client.CreateRecord(t.Context(), testRecord())

		assert.ErrorIs(t, err, ErrRecordRejected)
		assert.ErrorContains(t, err, "status 400")
		assert.ErrorContains(t, err, "validation_error")
	})

	t.Run("incomplete record fails validation before any request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be issued for an invalid record")
		}))
		defer server.Close()

		client := NewClient(httpClient, server.URL, "test-token", "db-123")

		record := testRecord()
		record.Token = ""

		err := client.CreateRecord(t.Context(), record)

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}
