package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/auth"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
)

func newTokenCommand() *cobra.Command {
	var (
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint a session token for a user id and role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.Auth.TokenTTL()
			}

			tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience, ttl, timeprovider.NewRealTimeProvider())
			if err != nil {
				return err
			}
			token, expiresAt, err := tokens.Issue(args[0], entity.Role(role))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(entity.RoleUser), "principal role: user, admin or service")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; defaults to auth.tokenTtl")
	return cmd
}
