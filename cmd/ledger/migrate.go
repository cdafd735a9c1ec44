package main

import (
	"github.com/spf13/cobra"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database/migration"
)

func newMigrateCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations",
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

			if err := app.db.MigrationManager().MigrateAll(cmd.Context()); err != nil {
				return err
			}
			if !seed {
				return nil
			}

			if err := app.buildLedger(cmd.Context()); err != nil {
				return err
			}
			return migration.SeedDemoAccounts(cmd.Context(), app.ledger, app.logger)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "load demo accounts after migrating")
	return cmd
}
