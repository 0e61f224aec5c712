package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/ledgerwatch/internal/relay"

	"github.com/urfave/cli/v3"
)

// watchCommand returns the CLI command that runs the relay: it subscribes to
// the ledger and republishes every newly observed block and transaction batch.
//
// Usage example:
//
//	ledgerwatch watch
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func watchCommand(rs relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Follows the ledger head and relays new blocks and transactions to the configured publisher.",
		Usage:       "Starts the poll-and-relay loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := rs.Start(ctx); err != nil {
				return err
			}
			defer rs.Close()

			<-quit
			return nil
		},
	}
}
