// Package cli is the command-line entrypoint of ledgerwatch.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/ledgerwatch/internal/relay"
	"github.com/gabapcia/ledgerwatch/internal/subscription"

	"github.com/urfave/cli/v3"
)

// Run builds and executes the ledgerwatch CLI application.
//
// Available commands:
//
//   - `watch`: subscribes to the ledger and relays new blocks and
//     transactions to the configured publisher until interrupted.
//   - `head`: prints the ledger's current head block once.
//
// Parameters:
//   - ctx: Context controlling the lifecycle of the CLI application.
//   - rs: The relay service driven by the watch command.
//   - ledger: The ledger client queried by the head command.
func Run(ctx context.Context, rs relay.Service, ledger subscription.Ledger) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ledgerwatch",
		Description:           "Command-line interface for following an append-only ledger and fanning out new blocks.",
		Usage:                 "ledgerwatch [command] [flags]",
		Commands: []*cli.Command{
			watchCommand(rs),
			headCommand(ledger),
		},
	}

	return app.Run(ctx, os.Args)
}
