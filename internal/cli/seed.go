package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	trailrepo "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres/trail"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

type trailCreator interface {
	Create(ctx context.Context, t *domain.Trail) (*domain.Trail, error)
}

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default trail definitions",
		Long: `Insert the Wild, Rocky, Wet and Frosty trail definitions.
Trails that already exist are left untouched, so seed is safe to re-run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			return e.done(cmd.Context(), "seed", seedTrails(cmd.Context(), trailrepo.New(e.pool), cmd.OutOrStdout()))
		},
	}
}

func seedTrails(ctx context.Context, trails trailCreator, out io.Writer) error {
	for _, t := range domain.DefaultTrails() {
		_, err := trails.Create(ctx, &t)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			fmt.Fprintf(out, "%s %s\n", skipMark, t.Title)
		case err != nil:
			fmt.Fprintf(out, "%s %s\n", failMark, t.Title)
			return fmt.Errorf("seed %s: %w", t.Title, err)
		default:
			fmt.Fprintf(out, "%s %s (%s)\n", okMark, t.Title, t.BaseDuration)
		}
	}
	return nil
}
