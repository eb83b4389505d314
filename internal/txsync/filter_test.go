package txsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const watchedAddress = "0x7C2D3d3C10C21d0c5BabE101Bf30aED822f227d6"

func TestFilterOutgoing(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		result := filterOutgoing(watchedAddress, nil)

		assert.Empty(t, result)
	})

	t.Run("keeps only transactions sent by the watched address", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "tx1", From: watchedAddress, To: "0xaaa"},
			{Hash: "tx2", From: "0xbbb", To: watchedAddress},
			{Hash: "tx3", From: watchedAddress, To: "0xccc"},
		}

		result := filterOutgoing(watchedAddress, txs)

		assert.Len(t, result, 2)
		assert.Equal(t, "tx1", result[0].Hash)
		assert.Equal(t, "tx3", result[1].Hash)
	})

	t.Run("address comparison is case-insensitive", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "tx1", From: "0x7c2d3d3c10c21d0c5babe101bf30aed822f227d6"},
			{Hash: "tx2", From: "0X7C2D3D3C10C21D0C5BABE101BF30AED822F227D6"},
		}

		result := filterOutgoing(watchedAddress, txs)

		assert.Len(t, result, 2)
	})

	t.Run("drops failed transactions regardless of value", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "tx1", From: watchedAddress, Value: "1000000000000000000", Failed: true},
			{Hash: "tx2", From: watchedAddress, Value: "0", Failed: false},
		}

		result := filterOutgoing(watchedAddress, txs)

		assert.Len(t, result, 1)
		assert.Equal(t, "tx2", result[0].Hash)
	})

	t.Run("preserves input order without dedup", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "tx3", From: watchedAddress},
			{Hash: "tx1", From: watchedAddress},
			{Hash: "tx1", From: watchedAddress},
			{Hash: "tx2", From: watchedAddress},
		}

		result := filterOutgoing(watchedAddress, txs)

		hashes := make([]string, len(result))
		for i, tx := range result {
			hashes[i] = tx.Hash
		}
		assert.Equal(t, []string{"tx3", "tx1", "tx1", "tx2"}, hashes)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		txs := []Transaction{
			{Hash: "tx1", From: "0xother"},
			{Hash: "tx2", From: watchedAddress},
		}

		_ = filterOutgoing(watchedAddress, txs)

		assert.Equal(t, "tx1", txs[0].Hash)
		assert.Equal(t, "tx2", txs[1].Hash)
	})
}
