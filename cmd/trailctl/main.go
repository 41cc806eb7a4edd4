// Command trailctl is the operator CLI: migrations, seed data, trail
// listing, admin promotion and dev tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokeranch-backend/internal/app"
	"github.com/heartmarshall/pokeranch-backend/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "trailctl",
		Short:         "trailctl - operator tooling for the ranch trail API",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.TrailsCmd())
	rootCmd.AddCommand(cli.PromoteCmd())
	rootCmd.AddCommand(cli.TokenCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
