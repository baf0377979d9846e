package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bakehouse/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API on the configured address.

Endpoints:
  GET    /bakeries                   list bakeries
  PATCH  /bakeries/{id}              rename a bakery (form field: name)
  GET    /bakeries/{id}/baked_goods  list one bakery's baked goods
  GET    /baked_goods                list baked goods
  POST   /baked_goods                create a baked good (name, price, bakery_id)
  DELETE /baked_goods/{id}           delete a baked good
  GET    /healthz                    storage health check

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr        string
	serveWatchConfig bool
)

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides server.address)")
	serveCmd.Flags().BoolVar(&serveWatchConfig, "watch-config", false, "Re-apply log settings when the config file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if bakeryService == nil || bakedGoodService == nil {
		return errors.New("bakery services not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if serveAddr != "" {
		settings.Server.Address = serveAddr
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	applyLogSettings(settings.Log)

	ports := &httpapi.Ports{
		Bakeries:   bakeryService,
		BakedGoods: bakedGoodService,
		Health:     healthChecker,
	}

	server, err := httpapi.NewServer(ports, httpapi.Options{
		Addr:              settings.Server.Address,
		ShutdownTimeout:   settings.Server.ShutdownTimeout,
		RequestsPerSecond: settings.RateLimit.RequestsPerSecond,
		Burst:             settings.RateLimit.Burst,
		Logger:            logger.Logger(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatchConfig && configWatcher != nil {
		go watchConfig(ctx)
	}

	cmd.Printf("Serving on http://%s\n", settings.Server.Address)
	return server.Run(ctx)
}

// watchConfig reloads settings on change and re-applies the log level.
// Listener address and rate limits need a restart.
func watchConfig(ctx context.Context) {
	err := configWatcher.Run(ctx, func() {
		if err := reloadSettings(); err != nil {
			logger.Warn("config reload failed", "error", err)
		}
	})
	if err != nil {
		logger.Warn("config watcher stopped", "error", err)
	}
}

func reloadSettings() error {
	if err := settingsService.Reload(); err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	logger.SetLevel(settings.Log.Level.String())
	logger.Info("config reloaded", "log_level", settings.Log.Level.String())
	return nil
}

// applyLogSettings configures the process logger.
func applyLogSettings(s domain.LogSettings) {
	logger.SetFormat(s.Format.String())
	logger.SetLevel(s.Level.String())
}
