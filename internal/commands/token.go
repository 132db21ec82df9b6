package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/tokenpkg"
)

func newTokenCommand(e *env) *cobra.Command {
	var (
		role     string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <username>",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != domain.RoleMember && role != domain.RoleAdmin {
				return fmt.Errorf("unknown role %q", role)
			}

			if err := e.load(); err != nil {
				return err
			}

			maker, err := tokenpkg.New(e.config.TokenType, e.config.TokenSymmetricKey)
			if err != nil {
				return err
			}

			if duration == 0 {
				duration = e.config.AccessTokenDuration
			}

			token, _, err := maker.CreateToken(args[0], role, duration)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", domain.RoleMember, "role claim (MEMBER or ADMIN)")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime (defaults to ACCESS_TOKEN_DURATION)")

	return cmd
}
