package cli

import (
	"context"

	"github.com/flarebot/saleswatch/internal/marketdir"

	"github.com/urfave/cli/v3"
)

// snapshotCommand returns a CLI command that regenerates the marketplace
// snapshot file from the external status capability and exits.
//
// Usage example:
//
//	saleswatch snapshot
func snapshotCommand(md marketdir.Service) *cli.Command {
	return &cli.Command{
		Name:        "snapshot",
		Description: "Regenerates the marketplace snapshot file used to build the directory.",
		Usage:       "Fetches the current marketplace list and overwrites the local snapshot file.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return md.Regenerate(ctx)
		},
	}
}
