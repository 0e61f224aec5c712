package relay

import (
	"context"

	"github.com/gabapcia/ledgerwatch/internal/subscription"
)

// Publisher is the outbound port delivering observed ledger events to
// external consumers (message brokers, pub/sub channels, and so on).
type Publisher interface {
	// PublishBlocks delivers a batch of newly observed blocks.
	PublishBlocks(ctx context.Context, blocks []subscription.Block) error

	// PublishTransactions delivers a batch of transactions taken from newly
	// observed blocks.
	PublishTransactions(ctx context.Context, txs []subscription.Transaction) error
}
