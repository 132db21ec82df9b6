package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-loans/cmd/httpserver"
	"github.com/go-petr/pet-loans/internal/reconciler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(e *env) *cobra.Command {
	var withoutScheduler bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reconciliation scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.load(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(e.context(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, e, !withoutScheduler)
		},
	}

	cmd.Flags().BoolVar(&withoutScheduler, "no-scheduler", false, "do not run the reconciliation jobs in this process")

	return cmd
}

func runServe(ctx context.Context, e *env, withScheduler bool) error {
	logger := e.logger

	db, err := e.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	server, err := httpserver.New(db, logger, e.config)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if withScheduler {
		scheduler, err := reconciler.NewScheduler(server.Services.Reconciler, reconciler.Schedule{
			CapacityRecompute: e.config.CapacityRecomputeSchedule,
			OverdueSweep:      e.config.OverdueSweepSchedule,
		}, logger)
		if err != nil {
			return err
		}

		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              e.config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		errc <- srv.ListenAndServe()
	}()

	logger.Info().Str("address", srv.Addr).Msg("LOANS API SERVER HAS STARTED")

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
