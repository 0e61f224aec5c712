package subscription

import "context"

// BlockReceiver is notified whenever the service observes new blocks. The
// receiver value itself is the subscription handle: registering the same
// value twice has no additional effect, and unsubscribing requires the same
// value back.
type BlockReceiver interface {
	// ReceiveBlocks delivers the blocks observed by one poll, oldest first.
	ReceiveBlocks(ctx context.Context, blocks []Block)
}

// TransactionReceiver is notified with the transactions contained in newly
// observed blocks. Identity semantics match BlockReceiver.
type TransactionReceiver interface {
	// ReceiveTransactions delivers the transactions of the blocks observed
	// by one poll as a single batch.
	ReceiveTransactions(ctx context.Context, txs []Transaction)
}

type blockReceiverFunc struct {
	fn func(ctx context.Context, blocks []Block)
}

func (r *blockReceiverFunc) ReceiveBlocks(ctx context.Context, blocks []Block) {
	r.fn(ctx, blocks)
}

// BlockReceiverFunc wraps fn in a freshly allocated BlockReceiver. Each call
// produces a distinct subscription identity, so keep the returned value to
// unsubscribe later.
func BlockReceiverFunc(fn func(ctx context.Context, blocks []Block)) BlockReceiver {
	return &blockReceiverFunc{fn: fn}
}

type transactionReceiverFunc struct {
	fn func(ctx context.Context, txs []Transaction)
}

func (r *transactionReceiverFunc) ReceiveTransactions(ctx context.Context, txs []Transaction) {
	r.fn(ctx, txs)
}

// TransactionReceiverFunc wraps fn in a freshly allocated
// TransactionReceiver with its own subscription identity.
func TransactionReceiverFunc(fn func(ctx context.Context, txs []Transaction)) TransactionReceiver {
	return &transactionReceiverFunc{fn: fn}
}
