package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	userrepo "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

type roleSetter interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, email string, role domain.UserRole) error
}

// PromoteCmd returns the promote command.
func PromoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user",
		Long: `Grant the admin role to the user with the given email. Admins can
create, edit and delete trail definitions.

Usage:
  trailctl promote --email=trainer@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			return e.done(cmd.Context(), "promote", promote(cmd.Context(), userrepo.New(e.pool), email, cmd.OutOrStdout()))
		},
	}

	cmd.Flags().String("email", "", "email of the user to promote")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func promote(ctx context.Context, users roleSetter, email string, out io.Writer) error {
	err := users.SetRole(ctx, email, domain.UserRoleAdmin)
	if errors.Is(err, domain.ErrNotFound) {
		// SetRole skips admins, so tell the two cases apart.
		u, lookupErr := users.GetByEmail(ctx, email)
		switch {
		case errors.Is(lookupErr, domain.ErrNotFound):
			return fmt.Errorf("no user with email %q", email)
		case lookupErr != nil:
			return fmt.Errorf("look up %q: %w", email, lookupErr)
		case u.Role.IsAdmin():
			fmt.Fprintf(out, "%s %s is already admin\n", skipMark, email)
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("promote %q: %w", email, err)
	}

	fmt.Fprintf(out, "%s %s promoted to admin\n", okMark, email)
	return nil
}
