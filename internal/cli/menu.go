package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewMenuCmd creates the 'menu' command for listing catalog items.
func NewMenuCmd() *cobra.Command {
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "menu",
		Short:   "List menu items",
		Long:    `Display the loaded menu, optionally filtered by category.`,
		Example: `  quickbites menu
  quickbites menu --category Pizza
  quickbites menu --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(category, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Show only items in this category")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runMenu(category string, jsonOutput bool) error {
	cfg := loadConfig()
	store := loadCatalog(cfg)

	items := store.Items()
	if category != "" {
		filtered := items[:0]
		for _, item := range items {
			if strings.EqualFold(item.Category, category) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if jsonOutput {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal menu: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		fmt.Println("No menu items found.")
		fmt.Printf("Expected menu CSV at %s\n", cfg.Paths.Menu)
		return nil
	}

	fmt.Printf("Menu (%d items, %d categories):\n\n", len(items), len(store.Categories()))
	for _, item := range items {
		fmt.Printf("  %s (%s)\n", item.Name, item.Restaurant)
		fmt.Printf("    Category: %s | ₹%.0f | %s | Rating: %.1f\n",
			item.Category, item.Price, item.Vegetarian, item.Rating)
		if len(item.Tags) > 0 {
			fmt.Printf("    Tags: %s\n", strings.Join(item.Tags, ", "))
		}
		fmt.Println()
	}

	return nil
}
