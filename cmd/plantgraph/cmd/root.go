package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/latticekit/plantgraph/internal/config"
	"github.com/latticekit/plantgraph/internal/telemetry"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd is the plantgraph CLI entry point. It carries no RunE of its
// own — the run subcommand drives the one hard-coded scenario named by
// its flags.
var rootCmd = &cobra.Command{
	Use:   "plantgraph",
	Short: "Simulate failure cascades on a plant dependency network",
	Long: `plantgraph loads a plant topology from CSV and simulates either a
single element failure or a multi-area perturbation, reporting the
resulting node characterization and service-path tables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		cfg = loaded

		logger, err = telemetry.NewLoggerFromLevel(cfg.Log.Level)
		return err
	},
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
