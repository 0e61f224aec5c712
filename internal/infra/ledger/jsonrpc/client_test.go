package jsonrpc

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	transportmocks "github.com/gabapcia/ledgerwatch/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gabapcia/ledgerwatch/internal/subscription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLatestBlock(t *testing.T) {
	t.Run("decodes the head block", func(t *testing.T) {
		connMock := transportmocks.NewClient(t)
		connMock.EXPECT().Call(mock.Anything, "ledger_getLatestBlock").
			Return(json.RawMessage(`{
				"number": "0x6",
				"hash": "h6",
				"parentHash": "h5",
				"transactions": [
					{"hash": "t1", "from": "a", "to": "b"},
					{"hash": "t2", "from": "b", "to": "c"}
				]
			}`), nil)

		c := NewClient(connMock)

		block, err := c.LatestBlock(t.Context())

		require.NoError(t, err)
		assert.Equal(t, subscription.Block{
			Index:        6,
			Hash:         "h6",
			PreviousHash: "h5",
			Transactions: []subscription.Transaction{
				{Hash: "t1", From: "a", To: "b"},
				{Hash: "t2", From: "b", To: "c"},
			},
		}, block)
	})

	t.Run("transport failure maps to ErrLedgerUnavailable", func(t *testing.T) {
		connMock := transportmocks.NewClient(t)
		connMock.EXPECT().Call(mock.Anything, "ledger_getLatestBlock").
			Return(nil, errors.New("connection refused"))

		c := NewClient(connMock)

		_, err := c.LatestBlock(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrLedgerUnavailable)
	})

	t.Run("malformed payload", func(t *testing.T) {
		connMock := transportmocks.NewClient(t)
		connMock.EXPECT().Call(mock.Anything, "ledger_getLatestBlock").
			Return(json.RawMessage(`"not a block"`), nil)

		c := NewClient(connMock)

		_, err := c.LatestBlock(t.Context())

		assert.Error(t, err)
	})
}

func TestChainInfo(t *testing.T) {
	t.Run("decodes the block interval from milliseconds", func(t *testing.T) {
		connMock := transportmocks.NewClient(t)
		connMock.EXPECT().Call(mock.Anything, "ledger_getConfig").
			Return(json.RawMessage(`{"blockInterval": "0x1388"}`), nil)

		c := NewClient(connMock)

		info, err := c.ChainInfo(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, info.BlockInterval)
	})

	t.Run("transport failure maps to ErrLedgerUnavailable", func(t *testing.T) {
		connMock := transportmocks.NewClient(t)
		connMock.EXPECT().Call(mock.Anything, "ledger_getConfig").
			Return(nil, errors.New("timeout"))

		c := NewClient(connMock)

		_, err := c.ChainInfo(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, subscription.ErrLedgerUnavailable)
	})
}
