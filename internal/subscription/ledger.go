package subscription

import (
	"context"
	"errors"
	"time"
)

// ErrLedgerUnavailable indicates the ledger node could not be reached or
// answered with an error. Ledger implementations should wrap their transport
// failures with it.
var ErrLedgerUnavailable = errors.New("ledger unavailable")

// ChainInfo carries the ledger configuration relevant to polling.
type ChainInfo struct {
	// BlockInterval is the expected time between two consecutive blocks.
	BlockInterval time.Duration
}

// Ledger is the read-only view of the remote ledger this service polls. The
// ledger exposes no push interface; LatestBlock is the only way to observe
// new entries.
type Ledger interface {
	// LatestBlock returns the current head block of the ledger.
	LatestBlock(ctx context.Context) (Block, error)

	// ChainInfo returns the ledger configuration, including the block
	// production interval used to derive the poll period.
	ChainInfo(ctx context.Context) (ChainInfo, error)
}
