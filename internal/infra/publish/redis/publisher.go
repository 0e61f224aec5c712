package redis

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/ledgerwatch/internal/relay"
	"github.com/gabapcia/ledgerwatch/internal/subscription"
)

const (
	// blocksChannel receives one JSON message per observed block batch.
	blocksChannel = "ledgerwatch:blocks"

	// transactionsChannel receives one JSON message per transaction batch.
	transactionsChannel = "ledgerwatch:transactions"
)

// blockMessage is the JSON shape published for each block.
type blockMessage struct {
	Index        uint64 `json:"index"`
	Hash         string `json:"hash"`
	PreviousHash string `json:"previousHash,omitempty"`
	TxCount      int    `json:"txCount"`
}

// transactionMessage is the JSON shape published for each transaction.
type transactionMessage struct {
	Hash string `json:"hash"`
	From string `json:"from"`
	To   string `json:"to"`
}

// PublishBlocks fans a block batch out over Redis pub/sub. Delivery is fire
// and forget: subscribers absent at publish time never see the message.
func (c *client) PublishBlocks(ctx context.Context, blocks []subscription.Block) error {
	messages := make([]blockMessage, len(blocks))
	for i, block := range blocks {
		messages[i] = blockMessage{
			Index:        block.Index,
			Hash:         block.Hash,
			PreviousHash: block.PreviousHash,
			TxCount:      len(block.Transactions),
		}
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	return c.conn.Publish(ctx, blocksChannel, payload).Err()
}

// PublishTransactions fans a transaction batch out over Redis pub/sub.
func (c *client) PublishTransactions(ctx context.Context, txs []subscription.Transaction) error {
	messages := make([]transactionMessage, len(txs))
	for i, tx := range txs {
		messages[i] = transactionMessage{
			Hash: tx.Hash,
			From: tx.From,
			To:   tx.To,
		}
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	return c.conn.Publish(ctx, transactionsChannel, payload).Err()
}

// Compile-time assertion that client implements the relay.Publisher port.
var _ relay.Publisher = (*client)(nil)
