package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-loans/cmd/httpserver"
	"github.com/go-petr/pet-loans/internal/reconciler"
)

func newReconcileCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run one reconciliation pass now",
	}

	passes := []struct {
		use   string
		short string
		run   func(*reconciler.Reconciler) func(context.Context) (reconciler.Summary, error)
	}{
		{
			use:   "capacity",
			short: "Recompute the loan capacity of every active account",
			run: func(r *reconciler.Reconciler) func(context.Context) (reconciler.Summary, error) {
				return r.RecomputeCapacity
			},
		},
		{
			use:   "overdue",
			short: "Default ACTIVE loans whose payment is past the grace period",
			run: func(r *reconciler.Reconciler) func(context.Context) (reconciler.Summary, error) {
				return r.SweepOverdue
			},
		},
	}

	for _, p := range passes {
		p := p

		cmd.AddCommand(&cobra.Command{
			Use:   p.use,
			Short: p.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := e.load(); err != nil {
					return err
				}

				db, err := e.connect()
				if err != nil {
					return err
				}
				defer db.Close()

				services, err := httpserver.NewServices(db, e.config)
				if err != nil {
					return err
				}

				summary, err := p.run(services.Reconciler)(e.context(cmd))
				if err != nil {
					return fmt.Errorf("reconcile %s: %w", p.use, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "processed=%d updated=%d failed=%d within_grace=%d\n",
					summary.Processed, summary.Updated, summary.Failed, summary.WithinGrace)

				return nil
			},
		})
	}

	return cmd
}
