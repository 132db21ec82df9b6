package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-loans/pkg/dbpkg"
)

func newMigrateCommand(e *env) *cobra.Command {
	var (
		dir  string
		down int
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations, or revert the last ones with --down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.load(); err != nil {
				return err
			}

			if dir == "" {
				dir = e.config.MigrationsDir
			}

			var (
				version uint
				err     error
			)

			if down > 0 {
				version, err = dbpkg.Rollback(dir, e.config.DBSource, down)
			} else {
				version, err = dbpkg.Migrate(dir, e.config.DBSource)
			}

			if err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	cmd.Flags().IntVar(&down, "down", 0, "number of applied migrations to revert")

	return cmd
}
