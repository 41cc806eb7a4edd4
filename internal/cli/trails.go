package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	trailrepo "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres/trail"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

type trailLister interface {
	List(ctx context.Context) ([]domain.Trail, error)
}

// TrailsCmd returns the trails command.
func TrailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trails",
		Short: "List trail definitions and how many creatures are out on each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			return e.done(cmd.Context(), "trails", printTrails(cmd.Context(), trailrepo.New(e.pool), cmd.OutOrStdout()))
		},
	}
}

func printTrails(ctx context.Context, trails trailLister, out io.Writer) error {
	list, err := trails.List(ctx)
	if err != nil {
		return fmt.Errorf("list trails: %w", err)
	}

	if len(list) == 0 {
		fmt.Fprintln(out, "No trails defined. Run `trailctl seed` to add the defaults.")
		return nil
	}

	for _, t := range list {
		types := make([]string, 0, len(t.BuffedTypes))
		for _, ct := range t.BuffedTypes {
			types = append(types, string(ct))
		}

		roster := color.New(color.FgHiBlack).Sprint("idle")
		if n := len(t.Roster); n > 0 {
			roster = color.New(color.FgCyan).Sprintf("%d on trail", n)
		}

		fmt.Fprintf(out, "%-13s %-12s %-8s %-28s %s\n",
			t.Title, t.Slug(), t.BaseDuration, strings.Join(types, ","), roster)
	}
	return nil
}
