package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/pokeranch-backend/internal/auth"
	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// TokenCmd returns the token command.
func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local testing",
		Long: `Print a signed access token for the given user, using the configured
JWT secret, issuer and TTL. Intended for development and smoke tests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user-id")
			role, _ := cmd.Flags().GetString("role")

			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			return mintToken(jwt, userID, role, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("user-id", "", "subject user ID (UUID)")
	cmd.Flags().String("role", string(domain.UserRoleUser), "role claim: user or admin")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func mintToken(issuer tokenIssuer, rawID, role string, out io.Writer) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid --user-id %q: %w", rawID, err)
	}
	if !domain.UserRole(role).IsValid() {
		return fmt.Errorf("invalid --role %q", role)
	}

	token, err := issuer.GenerateAccessToken(id, role)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token)
	return nil
}
