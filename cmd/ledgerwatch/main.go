package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/ledgerwatch/internal/config"
	"github.com/gabapcia/ledgerwatch/internal/handlers/cli"
	ledgerrpc "github.com/gabapcia/ledgerwatch/internal/infra/ledger/jsonrpc"
	"github.com/gabapcia/ledgerwatch/internal/infra/publish/redis"
	"github.com/gabapcia/ledgerwatch/internal/pkg/logger"
	"github.com/gabapcia/ledgerwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/ledgerwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/ledgerwatch/internal/pkg/transport/http"
	transportjsonrpc "github.com/gabapcia/ledgerwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/ledgerwatch/internal/relay"
	"github.com/gabapcia/ledgerwatch/internal/subscription"
)

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, "ledgerwatch")
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	conn := transportjsonrpc.NewClient(transporthttp.NewClient().StandardClient(), cfg.LedgerEndpoint)
	ledger := ledgerrpc.NewClient(conn)

	subOpts := []subscription.Option{
		subscription.WithErrorHandler(func(ctx context.Context, err error) {
			logger.Warn(ctx, "ledger poll failed", "error", err)
		}),
	}
	if cfg.PollInterval > 0 {
		subOpts = append(subOpts, subscription.WithPollInterval(cfg.PollInterval))
	}
	subs := subscription.New(ledger, subOpts...)

	publisher, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer func() { _ = publisher.Close() }()

	relaySvc := relay.New(subs, publisher, relay.WithRetry(retry.New()))

	return cli.Run(ctx, relaySvc, ledger)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
