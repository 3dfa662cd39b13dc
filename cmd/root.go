package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hance08/txengine/internal/app"
	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ErrUsage = errors.New("usage: txengine [flags] <transactions.csv>")

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(errhandler.HandleError(os.Stderr, err))
	}
}

func NewRootCmd() *cobra.Command {
	v := viper.New()
	cfg := config.NewDefault()

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "txengine <transactions.csv>",
		Short: "txengine replays a transactions CSV and prints the final account balances",
		Long: `txengine reads deposits, withdrawals, disputes, resolves and chargebacks
from a CSV file in order and prints every client's available, held and
total funds, and whether the account was locked by a chargeback.`,
		Example: `  # Print balances as CSV
  txengine transactions.csv > accounts.csv

  # Render a table and a run summary
  txengine --format table --summary transactions.csv`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one transactions file, got %d", ErrUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApp(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			runner := &processRunner{
				app:    application,
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	flags.IntP("batch-size", "b", constants.DefaultBatchSize, "number of records handed to the engine at once")
	flags.StringP("format", "f", constants.FormatCSV, "output format (csv, table)")
	flags.BoolP("summary", "s", false, "print a run summary to stderr")
	flags.String("metrics-file", "", "write Prometheus metrics to this file")
	flags.String("log-level", constants.DefaultLogLevel, "log level (trace, debug, info, warn, error)")

	bindings := map[string]string{
		"engine.batch_size": "batch-size",
		"output.format":     "format",
		"output.summary":    "summary",
		"metrics.file":      "metrics-file",
		"log.level":         "log-level",
	}
	for key, name := range bindings {
		// only fails on a nil flag
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewInfoCmd(cfg))

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string, cfg *config.Config) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
