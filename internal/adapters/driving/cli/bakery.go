package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bakeryCmd = &cobra.Command{
	Use:   "bakery",
	Short: "Manage bakeries",
	Long:  `List, add, or rename bakeries.`,
}

var bakeryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bakeries",
	Args:  cobra.NoArgs,
	RunE:  runBakeryList,
}

var bakeryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a bakery",
	Args:  cobra.ExactArgs(1),
	RunE:  runBakeryAdd,
}

var bakeryRenameCmd = &cobra.Command{
	Use:   "rename [id] [name]",
	Short: "Rename a bakery",
	Args:  cobra.ExactArgs(2),
	RunE:  runBakeryRename,
}

func init() {
	bakeryCmd.AddCommand(bakeryListCmd)
	bakeryCmd.AddCommand(bakeryAddCmd)
	bakeryCmd.AddCommand(bakeryRenameCmd)
	rootCmd.AddCommand(bakeryCmd)
}

func runBakeryList(cmd *cobra.Command, _ []string) error {
	if bakeryService == nil {
		return errors.New("bakery service not configured")
	}

	bakeries, err := bakeryService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list bakeries: %w", err)
	}

	if len(bakeries) == 0 {
		cmd.Println("No bakeries found.")
		return nil
	}

	cmd.Println("Bakeries:")
	cmd.Println()
	for i := range bakeries {
		cmd.Printf("  %d  %s\n", bakeries[i].ID, bakeries[i].Name)
	}
	cmd.Println()
	cmd.Printf("Total: %d bakeries\n", len(bakeries))
	return nil
}

func runBakeryAdd(cmd *cobra.Command, args []string) error {
	if bakeryService == nil {
		return errors.New("bakery service not configured")
	}

	bakery, err := bakeryService.Add(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to add bakery: %w", err)
	}

	cmd.Printf("Added bakery %d: %s\n", bakery.ID, bakery.Name)
	return nil
}

func runBakeryRename(cmd *cobra.Command, args []string) error {
	if bakeryService == nil {
		return errors.New("bakery service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	bakery, err := bakeryService.Rename(cmd.Context(), id, args[1])
	if err != nil {
		return fmt.Errorf("failed to rename bakery: %w", err)
	}

	cmd.Printf("Renamed bakery %d to: %s\n", bakery.ID, bakery.Name)
	return nil
}

// parseID parses a record ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", arg)
	}
	return id, nil
}
