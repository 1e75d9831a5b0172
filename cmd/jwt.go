package main

import (
	"context"
	"fmt"

	"vantage/internal/auth"
	"vantage/internal/config"
	"vantage/pkg/domain"
	"vantage/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256
// access token for a given user ID and TTL using the configured key pair.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an access token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			userID, _ := cmd.Flags().GetInt64("user")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			issuer, err := auth.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.PublicKey, cfg.JWT.AccessTokenTTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			if ttl <= 0 {
				ttl = cfg.JWT.AccessTokenTTL
			}
			token, err := issuer.IssueWithTTL(domain.UserID(userID), ttl)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(token.AccessToken) //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("user", 0, "User ID the token is issued for")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h). Defaults to the configured access token TTL")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
