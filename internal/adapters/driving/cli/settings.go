package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the server address, storage location, logging,
and rate limiting.

Settings are stored in config.toml inside the bakehouse home directory and
can be overridden with BAKEHOUSE_<SECTION>_<KEY> environment variables,
e.g. BAKEHOUSE_SERVER_ADDRESS.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting and save it to the config file.

Available keys:
  server.address                  host:port of the HTTP API
  server.shutdown_timeout         seconds to wait for in-flight requests
  storage.data_dir                directory holding bakeries.db
  log.level                       debug, info, warn, or error
  log.format                      auto, text, or json
  rate_limit.requests_per_second  sustained request rate (0 disables)
  rate_limit.burst                requests allowed at once`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Address)
	cmd.Printf("  Shutdown timeout: %s\n", settings.Server.ShutdownTimeout)
	cmd.Println()

	cmd.Println("[Storage]")
	if settings.Storage.DataDir != "" {
		cmd.Printf("  Data directory: %s\n", settings.Storage.DataDir)
	} else {
		cmd.Printf("  Data directory: (default)\n")
	}
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Level: %s\n", settings.Log.Level)
	cmd.Printf("  Format: %s\n", settings.Log.Format.Description())
	cmd.Println()

	cmd.Println("[Rate Limit]")
	if settings.RateLimit.Enabled() {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Requests per second: %s\n", strconv.FormatFloat(settings.RateLimit.RequestsPerSecond, 'f', -1, 64))
		cmd.Printf("  Burst: %d\n", settings.RateLimit.Burst)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'bakehouse settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if !isSettingKey(key) {
		return fmt.Errorf("unknown setting %q (valid keys: %s)", key, strings.Join(settingsService.Keys(), ", "))
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to: %s\n", key, value)
	return nil
}

func isSettingKey(key string) bool {
	for _, k := range settingsService.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
