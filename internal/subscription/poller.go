package subscription

import (
	"context"
	"maps"
	"slices"
	"time"
)

// startPollingLocked starts the poll loop if it is not already running.
// Callers must hold s.mu.
//
// ctx bounds only the two synchronous calls made here: the priming poll that
// seeds the cursor and the ChainInfo lookup that derives the poll period.
// Both failures are absorbed, the former by leaving the cursor unset and the
// latter by falling back to defaultPollInterval. The loop itself runs on its
// own cancelable context so it outlives the subscribe call.
func (s *service) startPollingLocked(ctx context.Context) {
	if s.pollCancel != nil {
		return
	}

	if head, err := s.ledger.LatestBlock(ctx); err != nil {
		s.reportError(ctx, err)
	} else {
		s.cursor = head
	}

	interval := s.interval
	if interval <= 0 {
		info, err := s.ledger.ChainInfo(ctx)
		if err != nil || info.BlockInterval <= 0 {
			if err != nil {
				s.reportError(ctx, err)
			}
			interval = defaultPollInterval
		} else {
			interval = info.BlockInterval
		}
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.pollCancel = cancel
	s.pollDone = done

	go s.pollLoop(pollCtx, interval, done)
}

// stopPollingLockedIfIdle clears the poll handle when no receivers remain and
// returns the cancel function plus the loop's done channel. Both are nil when
// the loop keeps running. Callers must hold s.mu, release it, then cancel and
// wait on done so an in-flight tick can finish without deadlocking.
func (s *service) stopPollingLockedIfIdle() (context.CancelFunc, chan struct{}) {
	if s.pollCancel == nil || s.receiverCountLocked() > 0 {
		return nil, nil
	}

	cancel, done := s.pollCancel, s.pollDone
	s.pollCancel, s.pollDone = nil, nil
	return cancel, done
}

// pollLoop fires tick with zero initial delay and then with a fixed delay of
// interval between the end of one tick and the start of the next. It exits
// when ctx is canceled, closing done to acknowledge the cancellation.
func (s *service) pollLoop(ctx context.Context, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.tick(ctx)
			timer.Reset(interval)
		}
	}
}

// tick performs one poll-compare-dispatch pass. Query failures leave cursor
// and receivers untouched; the next tick simply tries again. A head equal to
// the cursor dispatches nothing. A changed head advances the cursor and is
// delivered to every block receiver as a single-element batch, with its
// transactions delivered to every transaction receiver as one combined batch.
// Receivers are invoked outside the state lock.
func (s *service) tick(ctx context.Context) {
	head, err := s.ledger.LatestBlock(ctx)
	if err != nil {
		s.reportError(ctx, err)
		return
	}

	s.mu.Lock()
	if head.Equal(s.cursor) {
		s.mu.Unlock()
		return
	}
	s.cursor = head
	blockReceivers := slices.Collect(maps.Keys(s.blockReceivers))
	txReceivers := slices.Collect(maps.Keys(s.txReceivers))
	s.mu.Unlock()

	newBlocks := []Block{head}
	txs := make([]Transaction, 0, len(head.Transactions))
	for _, block := range newBlocks {
		txs = append(txs, block.Transactions...)
	}

	for _, r := range blockReceivers {
		r.ReceiveBlocks(ctx, newBlocks)
	}
	for _, r := range txReceivers {
		r.ReceiveTransactions(ctx, txs)
	}
}
