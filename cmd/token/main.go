// Command token mints an access token for the API, for local use and scripts.
//
// Usage:
//
//	JWT_SECRET_KEY=... go run ./cmd/token --subject u-1 --name "Hannah Arendt" --role manager
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/config"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		req    auth.IssueTokenRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:           "token",
		Short:         "Mint a signed access token",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
			token, expiresAt, err := svc.GenerateAccessToken(req.Subject, req.Name, user.Role(req.Role), req.TTL)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(auth.TokenResponse{AccessToken: token, ExpiresAt: expiresAt})
			}
			_, err = fmt.Fprintln(out, token)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Subject, "subject", "", "token subject (user id)")
	flags.StringVar(&req.Name, "name", "", "display name, recorded as the approver on leave decisions")
	flags.StringVar(&req.Role, "role", string(user.RoleEmployee), "owner, manager or employee")
	flags.StringVar(&req.TTL, "ttl", "", "lifetime such as 8h, defaults to JWT_ACCESS_EXPIRATION_TIME")
	flags.BoolVar(&asJSON, "json", false, "print token and expiry as JSON")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
