package jsonrpc

import (
	"time"

	"github.com/gabapcia/ledgerwatch/internal/pkg/types"
	"github.com/gabapcia/ledgerwatch/internal/subscription"
)

type (
	// TransactionResponse is a raw transaction object as returned by the
	// ledger node.
	TransactionResponse struct {
		Hash string `json:"hash"`
		From string `json:"from"`
		To   string `json:"to"`
	}

	// BlockResponse is a raw block object as returned by the ledger node.
	// Numbers are hex-encoded per the node's JSON-RPC conventions.
	BlockResponse struct {
		Number       types.Hex             `json:"number"`
		Hash         string                `json:"hash"`
		ParentHash   string                `json:"parentHash"`
		Transactions []TransactionResponse `json:"transactions"`
	}

	// ConfigResponse is the ledger configuration object. The block interval
	// is expressed in milliseconds.
	ConfigResponse struct {
		BlockInterval types.Hex `json:"blockInterval"`
	}
)

func (t TransactionResponse) toTransaction() subscription.Transaction {
	return subscription.Transaction{
		Hash: t.Hash,
		From: t.From,
		To:   t.To,
	}
}

func (b BlockResponse) toBlock() subscription.Block {
	transactions := make([]subscription.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toTransaction()
	}

	return subscription.Block{
		Index:        b.Number.Uint64(),
		Hash:         b.Hash,
		PreviousHash: b.ParentHash,
		Transactions: transactions,
	}
}

func (c ConfigResponse) toChainInfo() subscription.ChainInfo {
	return subscription.ChainInfo{
		BlockInterval: time.Duration(c.BlockInterval.Uint64()) * time.Millisecond,
	}
}
