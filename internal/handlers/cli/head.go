package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/ledgerwatch/internal/subscription"

	"github.com/urfave/cli/v3"
)

// headCommand returns the CLI command that queries the ledger once and prints
// its current head block as JSON.
//
// Usage example:
//
//	ledgerwatch head
func headCommand(ledger subscription.Ledger) *cli.Command {
	return &cli.Command{
		Name:        "head",
		Description: "Fetches the ledger's current head block and prints it as JSON.",
		Usage:       "Performs a single latest-block query. Useful to verify connectivity.",
		Action: func(ctx context.Context, c *cli.Command) error {
			block, err := ledger.LatestBlock(ctx)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(block, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Writer, string(out))
			return nil
		},
	}
}
