package cli

import (
	"context"
	"os"

	"github.com/flarebot/saleswatch/internal/marketdir"
	"github.com/flarebot/saleswatch/internal/saleswatch"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the saleswatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the sales polling and announcement loop.
//   - `snapshot`: Regenerates the marketplace snapshot file.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - sw: The saleswatch service implementation used by the start command.
//   - md: The marketdir service implementation used by the snapshot command.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, sw saleswatch.Service, md marketdir.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "saleswatch",
		Description:           "Command-line interface for running the saleswatch announcement loop.",
		Usage:                 "saleswatch [command] [flags]",
		Commands: []*cli.Command{
			startCommand(sw),
			snapshotCommand(md),
		},
	}

	return app.Run(ctx, os.Args)
}
