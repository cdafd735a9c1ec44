package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/config"
)

const (
	flagConfigEnv      = "config-env"
	configKeyConfigEnv = "env"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "credit-ledger",
		Short:         "ArcanumSpy credit ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(flagConfigEnv, "", "configuration environment (development, test, production); defaults to LEDGER_ENV")

	cmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newReconcileCommand(),
		newTokenCommand(),
	)
	return cmd
}

// loadConfig resolves the environment from the flag or LEDGER_ENV and loads configs/{env}.yaml
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindEnv(configKeyConfigEnv, config.EnvPrefix+"_ENV"); err != nil {
		return nil, err
	}
	if err := v.BindPFlag(configKeyConfigEnv, cmd.Flags().Lookup(flagConfigEnv)); err != nil {
		return nil, err
	}

	return config.LoadConfigFor(strings.ToLower(v.GetString(configKeyConfigEnv)))
}
