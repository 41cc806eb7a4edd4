package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres"
)

// MigrateCmd returns the migrate command.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply every pending embedded SQL migration to the database named by
DATABASE_DSN (or database.dsn in the config file).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			results, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN)
			printMigrations(cmd.OutOrStdout(), results)
			if err != nil {
				logger.Error("migrate failed", slog.String("error", err.Error()))
				return err
			}

			logger.Info("migrations applied", slog.Int("count", len(results)))
			return nil
		},
	}
}

func printMigrations(out io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(out, "Database is up to date.")
		return
	}
	for _, r := range results {
		mark := okMark
		if r.Error != nil {
			mark = failMark
		}
		fmt.Fprintf(out, "%s %s (%s)\n", mark, r.Source.Path, r.Duration)
	}
}
