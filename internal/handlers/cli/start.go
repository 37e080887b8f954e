package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/flarebot/saleswatch/internal/saleswatch"

	"github.com/urfave/cli/v3"
)

// startCommand returns a CLI command that runs the full announcement loop:
// watermark resolution, feed traversal and sequential publishing on a fixed
// interval.
//
// Usage example:
//
//	saleswatch start
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func startCommand(sw saleswatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the sales polling and announcement loop.",
		Usage:       "Initializes and runs the loop. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			if err := sw.Start(ctx); err != nil {
				return err
			}
			defer sw.Close()

			<-quit
			return nil
		},
	}
}
