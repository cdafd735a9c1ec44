package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/dto"
)

func newReconcileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <user-id>",
		Short: "Compare an account with its transaction log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.buildLedger(cmd.Context()); err != nil {
				return err
			}
			report, err := app.ledger.Reconcile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(dto.NewReconcileResponse(report), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if !report.Consistent {
				return fmt.Errorf("ledger drift detected for %s", args[0])
			}
			return nil
		},
	}
}
