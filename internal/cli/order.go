package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quickbites/quickbites/internal/cart"
	"github.com/quickbites/quickbites/internal/catalog"
	"github.com/quickbites/quickbites/internal/session"
	"github.com/spf13/cobra"
)

// NewOrderCmd creates the 'order' command for a one-shot order
// simulation.
func NewOrderCmd() *cobra.Command {
	var discount float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "order [item names...]",
		Short: "Simulate placing an order for the named menu items",
		Long:  `Build a cart from the named menu items, show add-on suggestions,
and place the order against a fresh session wallet, printing the full
totals breakdown. Repeat an item name to increase its quantity.`,
		Example: `  quickbites order "Chicken Biryani"
  quickbites order "Margherita Pizza" "Margherita Pizza" "Veg Burger"
  quickbites order "Chicken Biryani" --discount 10 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(args, discount, jsonOutput)
		},
	}

	cmd.Flags().Float64VarP(&discount, "discount", "d", 0, "Order-level discount percent")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runOrder(itemNames []string, discount float64, jsonOutput bool) error {
	cfg := loadConfig()
	store := loadCatalog(cfg)

	sess := session.New()
	for _, name := range itemNames {
		item, ok := findItem(store, name)
		if !ok {
			return fmt.Errorf("item %q not found on the menu", name)
		}
		sess.AddItem(item, 1)
	}

	suggestions := cart.Suggest(sess.CartItemNames(), cart.LoadRules(cfg.Paths.CartRules))

	order, err := sess.PlaceOrder(cfg.Settings.TaxRate, discount)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(order, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal order: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Order %s placed:\n\n", order.ID)
	for _, line := range order.Lines {
		fmt.Printf("  %dx %s (%s) @ ₹%.0f\n",
			line.Quantity, line.Item.Name, line.Item.Restaurant, line.Item.Price)
	}

	totals := order.Totals
	fmt.Printf("\n  Subtotal:        ₹%.2f\n", totals.SubtotalGross)
	if totals.ItemDiscount > 0 {
		fmt.Printf("  Item discounts: -₹%.2f\n", totals.ItemDiscount)
	}
	if totals.GlobalDiscount > 0 {
		fmt.Printf("  Order discount: -₹%.2f\n", totals.GlobalDiscount)
	}
	fmt.Printf("  Tax:             ₹%.2f\n", totals.Tax)
	fmt.Printf("  Total:           ₹%.2f\n", totals.FinalTotal)
	fmt.Printf("  Wallet balance:  ₹%.2f\n", sess.WalletBalance)

	if len(suggestions) > 0 {
		fmt.Println("\nGoes well with your order:")
		for _, s := range suggestions {
			fmt.Printf("  + %s\n", s)
		}
	}

	return nil
}

// findItem resolves a menu item by name, case-insensitive, first match
// in catalog order.
func findItem(store *catalog.Store, name string) (catalog.MenuItem, bool) {
	for _, item := range store.Items() {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return catalog.MenuItem{}, false
}
