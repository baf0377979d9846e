package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/bakehouse/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/services"
	"github.com/custodia-labs/bakehouse/internal/logger"
)

// testConfig is the config store behind the settings service installed by
// setupTestServices.
var testConfig *memory.ConfigStore

// setupTestServices installs services over seeded in-memory stores:
// bakeries 1 "Delightful Donuts" and 2 "Incredible Crullers", and baked
// good 1 "Croissant" (3.5, bakery 1).
func setupTestServices() func() {
	bakeries := memory.NewBakeryStore()
	goods := memory.NewBakedGoodStore(bakeries)
	testConfig = memory.NewConfigStore()

	ctx := context.Background()
	_, _ = bakeries.Create(ctx, domain.Bakery{Name: "Delightful Donuts"})
	_, _ = bakeries.Create(ctx, domain.Bakery{Name: "Incredible Crullers"})
	_, _ = goods.Create(ctx, domain.BakedGood{Name: "Croissant", Price: 3.5, BakeryID: 1})

	SetServices(Services{
		Bakeries:   services.NewBakeryService(bakeries),
		BakedGoods: services.NewBakedGoodService(goods, bakeries),
		Settings:   services.NewSettingsService(testConfig),
	})

	return func() {
		SetServices(Services{})
		testConfig = nil
		resetFlags()
		logger.SetVerbose(false)
		logger.SetLevel("info")
	}
}

// resetFlags restores flag variables that persist between executions.
func resetFlags() {
	verbose = false
	serveAddr = ""
	serveWatchConfig = false
	listBakeryID = 0
	if f := bakedGoodListCmd.Flags().Lookup("bakery"); f != nil {
		f.Changed = false
	}
}

// runCommand executes the root command with args and returns its output.
func runCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
