// Package cli provides the command-line interface for mifugo.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/etabo/mifugo-connect/internal/config"
	"github.com/etabo/mifugo-connect/internal/market"
)

var (
	// Version is set at build time.
	Version = "2.4.0"

	// Global flags
	verbose bool

	// Global config, logger and market store, built in PersistentPreRunE.
	cfg      config.Config
	logger   *slog.Logger
	logClose func() error
	store    *market.Store
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mifugo",
	Short: "Livestock market terminal for Turkana County",
	Long: `Mifugo Connect is a livestock-market information terminal: market
operators log livestock prices by animal, market hub and demand level,
inspect price trends, and simulate how a pastoralist on a feature phone
queries prices over SMS.

All data lives in memory for the session, seeded from MIFUGO_DATA_FILE
(YAML) or from the built-in demo dataset.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, logClose = config.SetupLogger(cfg.LogFile, cfg.LogLevel)

		seed := market.DefaultSeed()
		if cfg.DataFile != "" {
			var err error
			seed, err = market.LoadSeedFile(cfg.DataFile)
			if err != nil {
				return fmt.Errorf("load seed data: %w", err)
			}
			logger.Info("seed data loaded", "file", cfg.DataFile, "records", len(seed))
		}
		store = market.NewStore(seed...)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logClose != nil {
			if err := logClose(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(dashboardCmd)
}
