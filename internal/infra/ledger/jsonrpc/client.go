// Package jsonrpc implements the subscription.Ledger interface against a
// ledger node's JSON-RPC 2.0 API.
package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"

	transport "github.com/gabapcia/ledgerwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/ledgerwatch/internal/subscription"
)

const (
	getLatestBlockMethod = "ledger_getLatestBlock"
	getConfigMethod      = "ledger_getConfig"
)

// client talks to a ledger node through a generic JSON-RPC transport.
type client struct {
	conn transport.Client
}

var _ subscription.Ledger = (*client)(nil)

// NewClient returns a Ledger implementation backed by the given JSON-RPC
// connection.
func NewClient(conn transport.Client) *client {
	return &client{
		conn: conn,
	}
}

// LatestBlock fetches the ledger's current head block. Transport failures are
// wrapped in subscription.ErrLedgerUnavailable.
func (c *client) LatestBlock(ctx context.Context) (subscription.Block, error) {
	data, err := c.conn.Call(ctx, getLatestBlockMethod)
	if err != nil {
		return subscription.Block{}, fmt.Errorf("%w: %v", subscription.ErrLedgerUnavailable, err)
	}

	var block BlockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return subscription.Block{}, err
	}

	return block.toBlock(), nil
}

// ChainInfo fetches the ledger configuration. Transport failures are wrapped
// in subscription.ErrLedgerUnavailable.
func (c *client) ChainInfo(ctx context.Context) (subscription.ChainInfo, error) {
	data, err := c.conn.Call(ctx, getConfigMethod)
	if err != nil {
		return subscription.ChainInfo{}, fmt.Errorf("%w: %v", subscription.ErrLedgerUnavailable, err)
	}

	var cfg ConfigResponse
	if err := json.Unmarshal(data, &cfg); err != nil {
		return subscription.ChainInfo{}, err
	}

	return cfg.toChainInfo(), nil
}
