// Package relay bridges the in-process subscription service to external
// consumers. It registers itself as a block and transaction receiver and
// republishes every batch through a Publisher, with optional retries.
//
// Delivery stays best effort end to end: receiver callbacks hand batches to a
// buffered queue and never block the poll loop. When the queue is full the
// batch is dropped and logged.
package relay

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/ledgerwatch/internal/pkg/x/chanx"
	"github.com/gabapcia/ledgerwatch/internal/subscription"
)

// ErrServiceAlreadyStarted is returned by Start when the relay is running.
var ErrServiceAlreadyStarted = errors.New("service already started")

const batchQueueSize = 16

// Service runs the relay. Start registers the receivers and launches the
// publish workers; Close unsubscribes and tears the workers down.
type Service interface {
	Start(ctx context.Context) error
	Close()
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	subscriptions subscription.Service
	publisher     Publisher
	retry         retry.Retry
}

var _ Service = (*service)(nil)

type config struct {
	retry retry.Retry
}

// Option customizes the relay built by New.
type Option func(*config)

// WithRetry makes publish failures retryable with the given policy. Without
// it, each batch gets a single publish attempt.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New builds a relay forwarding events from subs to publisher.
func New(subs subscription.Service, publisher Publisher, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		subscriptions: subs,
		publisher:     publisher,
		retry:         cfg.retry,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	workerCtx, cancel := context.WithCancel(context.Background())

	var (
		blocksCh = make(chan []subscription.Block, batchQueueSize)
		txsCh    = make(chan []subscription.Transaction, batchQueueSize)
	)

	blockReceiver := subscription.BlockReceiverFunc(func(ctx context.Context, blocks []subscription.Block) {
		select {
		case blocksCh <- blocks:
		default:
			logger.Warn(ctx, "relay queue full, dropping block batch", "batch.size", len(blocks))
		}
	})
	txReceiver := subscription.TransactionReceiverFunc(func(ctx context.Context, txs []subscription.Transaction) {
		select {
		case txsCh <- txs:
		default:
			logger.Warn(ctx, "relay queue full, dropping transaction batch", "batch.size", len(txs))
		}
	})

	go s.publishBlocks(workerCtx, blocksCh)
	go s.publishTransactions(workerCtx, txsCh)

	s.subscriptions.SubscribeBlocks(ctx, blockReceiver)
	s.subscriptions.SubscribeTransactions(ctx, txReceiver)

	s.closeFunc = func() {
		// the queues are never closed: a tick that snapshotted the registries
		// before the unsubscribe may still invoke the callbacks, and a send on
		// a closed channel would panic. The workers exit via the canceled
		// context and any late enqueue is dropped with the queue.
		s.subscriptions.UnsubscribeBlocks(blockReceiver)
		s.subscriptions.UnsubscribeTransactions(txReceiver)
		cancel()
	}

	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// publishBlocks drains blocksCh, publishing each batch until the channel is
// closed or ctx is canceled.
func (s *service) publishBlocks(ctx context.Context, blocksCh <-chan []subscription.Block) {
	for {
		blocks, ok := chanx.Recv(ctx, blocksCh)
		if !ok {
			return
		}

		err := s.publish(ctx, func() error {
			return s.publisher.PublishBlocks(ctx, blocks)
		})
		if err != nil {
			logger.Error(ctx, "failed to publish block batch",
				"batch.size", len(blocks),
				"error", err,
			)
		}
	}
}

// publishTransactions drains txsCh, publishing each batch until the channel
// is closed or ctx is canceled.
func (s *service) publishTransactions(ctx context.Context, txsCh <-chan []subscription.Transaction) {
	for {
		txs, ok := chanx.Recv(ctx, txsCh)
		if !ok {
			return
		}

		err := s.publish(ctx, func() error {
			return s.publisher.PublishTransactions(ctx, txs)
		})
		if err != nil {
			logger.Error(ctx, "failed to publish transaction batch",
				"batch.size", len(txs),
				"error", err,
			)
		}
	}
}

// publish runs operation through the retry policy when one is configured.
func (s *service) publish(ctx context.Context, operation func() error) error {
	if s.retry == nil {
		return operation()
	}
	return s.retry.Execute(ctx, operation)
}
