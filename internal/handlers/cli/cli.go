// Package cli wires the sync service into a command-line entrypoint.
package cli

import (
	"context"
	"os"

	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the crypto-notion-tracker CLI application.
//
// The only command is `sync`, which performs one full pipeline run. The root
// command defaults to it, so the argument-less invocation used by the hourly
// scheduler runs a sync directly.
func Run(ctx context.Context, ts txsync.Service) error {
	sync := syncCommand(ts)

	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "crypto-notion-tracker",
		Description:           "Syncs a wallet's outgoing transactions to a Notion database with USD valuations.",
		Usage:                 "crypto-notion-tracker [command]",
		Action:                sync.Action,
		Commands: []*cli.Command{
			sync,
		},
	}

	return app.Run(ctx, os.Args)
}
