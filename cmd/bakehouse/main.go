// Command bakehouse serves bakeries and their baked goods over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/bakehouse/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bakehouse/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bakehouse/internal/adapters/driving/cli"
	"github.com/custodia-labs/bakehouse/internal/core/services"
	"github.com/custodia-labs/bakehouse/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configDir, err := file.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: resolving config directory: %v\n", err)
		return 1
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return 1
	}
	logger.SetFormat(settings.Log.Format.String())
	logger.SetLevel(settings.Log.Level.String())

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening store: %v\n", err)
		return 1
	}
	defer store.Close()

	bakeryStore := store.BakeryStore()
	cli.SetServices(cli.Services{
		Bakeries:      services.NewBakeryService(bakeryStore),
		BakedGoods:    services.NewBakedGoodService(store.BakedGoodStore(), bakeryStore),
		Settings:      settingsService,
		Health:        store,
		ConfigWatcher: file.NewWatcher(configStore.Path()),
	})
	cli.SetVersion(version)

	// cobra has already printed the error.
	if err := cli.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}
