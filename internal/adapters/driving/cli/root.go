// Package cli provides the bakehouse command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
	"github.com/custodia-labs/bakehouse/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// verbose enables debug logging for the current invocation.
var verbose bool

// Services injected by the composition root.
var (
	bakeryService    driving.BakeryService
	bakedGoodService driving.BakedGoodService
	settingsService  driving.SettingsService
	healthChecker    HealthChecker
	configWatcher    ConfigWatcher
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ConfigWatcher calls onChange whenever the configuration file changes,
// until ctx is cancelled.
type ConfigWatcher interface {
	Run(ctx context.Context, onChange func()) error
}

// Services holds the dependencies of the commands.
type Services struct {
	Bakeries   driving.BakeryService
	BakedGoods driving.BakedGoodService
	Settings   driving.SettingsService

	// Health and ConfigWatcher are optional.
	Health        HealthChecker
	ConfigWatcher ConfigWatcher
}

var rootCmd = &cobra.Command{
	Use:   "bakehouse",
	Short: "Bakery and baked goods service",
	Long: `Bakehouse serves bakeries and their baked goods over a JSON HTTP API.

Run 'bakehouse serve' to start the API, or use the bakery and baked-good
commands to manage records directly.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	bakeryService = s.Bakeries
	bakedGoodService = s.BakedGoods
	settingsService = s.Settings
	healthChecker = s.Health
	configWatcher = s.ConfigWatcher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
