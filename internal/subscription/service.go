// Package subscription turns the ledger's pull-only "latest block" query into
// a push-style subscription service. Registered receivers are notified of
// newly observed blocks and of the transactions they contain.
//
// A single poll loop drives all notifications. It runs only while at least
// one receiver of either kind is registered: the first subscription starts
// it, and removing the last receiver stops it again.
package subscription

import (
	"context"
	"errors"
	"sync"
	"time"
)

// defaultPollInterval is used when no interval override is configured and the
// ledger's own block interval cannot be fetched at poll start.
const defaultPollInterval = 5 * time.Second

// ErrorHandler observes errors swallowed by the poll loop. Handlers must not
// block; a slow handler delays the next poll.
type ErrorHandler func(ctx context.Context, err error)

// Service registers and removes block and transaction receivers. All methods
// are safe for concurrent use.
//
// Delivery is best effort, at most once per observed head block. Blocks
// produced between two polls are skipped, not replayed, and a failed poll is
// simply retried on the next interval.
type Service interface {
	// SubscribeBlocks registers r for new-block notifications, starting the
	// poll loop if it is not running. Subscribing an already registered
	// receiver is a no-op. ctx bounds only the synchronous priming poll.
	SubscribeBlocks(ctx context.Context, r BlockReceiver)

	// UnsubscribeBlocks removes r. When no receivers of either kind remain,
	// it stops the poll loop and returns only after any in-flight poll has
	// completed, so no delivery happens after it returns.
	UnsubscribeBlocks(r BlockReceiver)

	// SubscribeTransactions registers r for transaction notifications.
	// Lifecycle semantics match SubscribeBlocks.
	SubscribeTransactions(ctx context.Context, r TransactionReceiver)

	// UnsubscribeTransactions removes r. Lifecycle semantics match
	// UnsubscribeBlocks.
	UnsubscribeTransactions(r TransactionReceiver)
}

type service struct {
	ledger   Ledger
	interval time.Duration // fixed override; zero means derive from ChainInfo
	onError  ErrorHandler  // nil means swallow silently

	mu             sync.Mutex
	blockReceivers map[BlockReceiver]struct{}
	txReceivers    map[TransactionReceiver]struct{}
	cursor         Block
	pollCancel     context.CancelFunc
	pollDone       chan struct{}
}

var _ Service = (*service)(nil)

type config struct {
	interval time.Duration
	onError  ErrorHandler
}

// Option customizes the service built by New.
type Option func(*config)

// WithPollInterval fixes the poll period instead of deriving it from the
// ledger's block interval.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithErrorHandler installs an observer for poll errors. Without it, poll
// errors are swallowed and manifest only as an absence of notifications.
func WithErrorHandler(f ErrorHandler) Option {
	return func(c *config) {
		c.onError = f
	}
}

// New builds a subscription service polling the given ledger.
func New(ledger Ledger, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		ledger:         ledger,
		interval:       cfg.interval,
		onError:        cfg.onError,
		blockReceivers: make(map[BlockReceiver]struct{}),
		txReceivers:    make(map[TransactionReceiver]struct{}),
	}
}

func (s *service) SubscribeBlocks(ctx context.Context, r BlockReceiver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blockReceivers[r] = struct{}{}
	s.startPollingLocked(ctx)
}

func (s *service) UnsubscribeBlocks(r BlockReceiver) {
	s.mu.Lock()
	delete(s.blockReceivers, r)
	cancel, done := s.stopPollingLockedIfIdle()
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (s *service) SubscribeTransactions(ctx context.Context, r TransactionReceiver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txReceivers[r] = struct{}{}
	s.startPollingLocked(ctx)
}

func (s *service) UnsubscribeTransactions(r TransactionReceiver) {
	s.mu.Lock()
	delete(s.txReceivers, r)
	cancel, done := s.stopPollingLockedIfIdle()
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// receiverCountLocked returns the combined number of registered receivers.
// Callers must hold s.mu.
func (s *service) receiverCountLocked() int {
	return len(s.blockReceivers) + len(s.txReceivers)
}

// reportError forwards err to the configured handler, if any. Cancellations
// are not reported: stopping the poll loop cancels the in-flight query, and
// that is an orderly shutdown, not a ledger failure.
func (s *service) reportError(ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	if s.onError != nil {
		s.onError(ctx, err)
	}
}
