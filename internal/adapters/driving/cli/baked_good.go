package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

var bakedGoodCmd = &cobra.Command{
	Use:   "baked-good",
	Short: "Manage baked goods",
	Long:  `List, add, or remove baked goods.`,
}

var bakedGoodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List baked goods",
	Args:  cobra.NoArgs,
	RunE:  runBakedGoodList,
}

var bakedGoodAddCmd = &cobra.Command{
	Use:   "add [name] [price] [bakery-id]",
	Short: "Add a baked good",
	Args:  cobra.ExactArgs(3),
	RunE:  runBakedGoodAdd,
}

var bakedGoodRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a baked good",
	Args:  cobra.ExactArgs(1),
	RunE:  runBakedGoodRemove,
}

// listBakeryID filters the list command to one bakery.
var listBakeryID int64

func init() {
	bakedGoodListCmd.Flags().Int64VarP(&listBakeryID, "bakery", "b", 0, "Only list goods of this bakery")

	bakedGoodCmd.AddCommand(bakedGoodListCmd)
	bakedGoodCmd.AddCommand(bakedGoodAddCmd)
	bakedGoodCmd.AddCommand(bakedGoodRemoveCmd)
	rootCmd.AddCommand(bakedGoodCmd)
}

func runBakedGoodList(cmd *cobra.Command, _ []string) error {
	if bakedGoodService == nil {
		return errors.New("baked good service not configured")
	}

	var (
		goods []domain.BakedGood
		err   error
	)
	if cmd.Flags().Changed("bakery") {
		goods, err = bakedGoodService.ListByBakery(cmd.Context(), listBakeryID)
	} else {
		goods, err = bakedGoodService.List(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("failed to list baked goods: %w", err)
	}

	if len(goods) == 0 {
		cmd.Println("No baked goods found.")
		return nil
	}

	cmd.Println("Baked goods:")
	cmd.Println()
	for i := range goods {
		cmd.Printf("  %d  %s\n", goods[i].ID, goods[i].Name)
		cmd.Printf("    Price: %s\n", strconv.FormatFloat(goods[i].Price, 'f', -1, 64))
		cmd.Printf("    Bakery: %d\n", goods[i].BakeryID)
	}
	cmd.Println()
	cmd.Printf("Total: %d baked goods\n", len(goods))
	return nil
}

func runBakedGoodAdd(cmd *cobra.Command, args []string) error {
	if bakedGoodService == nil {
		return errors.New("baked good service not configured")
	}

	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: must be a number", args[1])
	}
	bakeryID, err := parseID(args[2])
	if err != nil {
		return err
	}

	good, err := bakedGoodService.Create(cmd.Context(), domain.BakedGood{
		Name:     args[0],
		Price:    price,
		BakeryID: bakeryID,
	})
	if err != nil {
		return fmt.Errorf("failed to add baked good: %w", err)
	}

	cmd.Printf("Added baked good %d: %s\n", good.ID, good.Name)
	return nil
}

func runBakedGoodRemove(cmd *cobra.Command, args []string) error {
	if bakedGoodService == nil {
		return errors.New("baked good service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := bakedGoodService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to remove baked good: %w", err)
	}

	cmd.Printf("Removed baked good %d\n", id)
	return nil
}
