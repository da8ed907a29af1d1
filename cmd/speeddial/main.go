// Command speeddial is the demonstration front end for the speed-dial
// library: an interactive shell plus a scripted walkthrough. All
// human-readable output lives here; the library only returns typed results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harishravi121/speeddial/manager"
	"github.com/harishravi121/speeddial/observability"
)

var (
	configFile string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "speeddial",
	Short: "In-memory speed-dial directory service",
	Long: `speeddial manages a fixed set of named directories, each holding a
bounded number of speed-dial code to phone number assignments.

Run without arguments to start the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		observability.RegisterObserver("zap", observability.NewZapObserver(logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(demoCmd)
}

// newManager builds a Manager from the --config file (or defaults), wiring
// event output through the zap observer unless the config names another.
func newManager() (*manager.Manager, error) {
	cfg := manager.DefaultConfig()
	if configFile != "" {
		loaded, err := manager.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if cfg.Observer == "" {
		cfg.Observer = "zap"
	}

	return manager.New(&cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
