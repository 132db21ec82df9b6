// Package commands implements the pet-loans command line interface.
package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-loans/internal/middleware"
	"github.com/go-petr/pet-loans/pkg/configpkg"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "petloans",
		Short: "Member savings and micro-loans engine",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config", "./configs", "directory holding app.env")

	env := &env{configDir: &configDir}

	rootCmd.AddCommand(
		newServeCommand(env),
		newReconcileCommand(env),
		newMigrateCommand(env),
		newTokenCommand(env),
	)

	return rootCmd
}

// env lazily loads what every subcommand needs.
type env struct {
	configDir *string
	config    configpkg.Config
	logger    zerolog.Logger
}

func (e *env) load() error {
	config, err := configpkg.Load(*e.configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	e.config = config
	e.logger = middleware.CreateLogger(config)

	return nil
}

func (e *env) connect() (*sql.DB, error) {
	db, err := dbpkg.Setup(e.config.DBDriver, e.config.DBSource)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return db, nil
}

func (e *env) context(cmd *cobra.Command) context.Context {
	return e.logger.WithContext(cmd.Context())
}
