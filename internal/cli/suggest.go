package cli

import (
	"encoding/json"
	"fmt"

	"github.com/quickbites/quickbites/internal/cart"
	"github.com/spf13/cobra"
)

// NewSuggestCmd creates the 'suggest' command for cart add-on
// suggestions.
func NewSuggestCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "suggest [cart items...]",
		Short: "Suggest add-ons for a cart",
		Long:  `Match cart item names against the add-on rules using fuzzy
matching and suggest complementary items not already in the cart.`,
		Example: `  quickbites suggest "Chicken Biryani"
  quickbites suggest "Margherita Pizza" "Veg Burger" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(args, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runSuggest(cartItems []string, jsonOutput bool) error {
	cfg := loadConfig()
	rules := cart.LoadRules(cfg.Paths.CartRules)

	suggestions := cart.Suggest(cartItems, rules)

	if jsonOutput {
		data, err := json.MarshalIndent(suggestions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal suggestions: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(suggestions) == 0 {
		fmt.Println("No add-on suggestions for this cart.")
		return nil
	}

	fmt.Println("Goes well with your cart:")
	for _, s := range suggestions {
		fmt.Printf("  + %s\n", s)
	}

	return nil
}
