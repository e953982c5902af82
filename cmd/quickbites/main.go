/*
Package main is the entry point for the quickbites CLI.

quickbites recommends food delivery menu items by scoring a menu
catalog against dietary preferences, occasion, mood, weather, past
ratings, and free-text cravings.

Usage:
  quickbites [command]

Available Commands:
  recommend   Recommend menu items for the current context
  search      Search the menu by keyword and description similarity
  menu        List menu items
  rate        Rate a menu item from 0 to 5
  ratings     List a user's recorded ratings
  suggest     Suggest add-ons for a cart
  order       Simulate placing an order for the named menu items
  version     Show version information
  help        Help about any command

Examples:
  # Recommend for a craving
  quickbites recommend --query "spicy chicken for dinner"

  # Vegetarian biryani for a family dinner
  quickbites recommend --category Biryani --diet vegetarian --occasion "Family Dinner"

  # Record a rating that boosts future recommendations
  quickbites rate "Chicken Biryani" 5 --restaurant "Spice Garden" --user alice
*/
package main

import (
	"fmt"
	"os"

	"github.com/quickbites/quickbites/internal/cli"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickbites",
		Short: "Context-aware food recommendations from the command line",
		Long:  `quickbites scores a restaurant menu catalog against everything known
about the moment: dietary preferences, occasion, mood, weather, the
user's past ratings, and a free-text craving matched against item
descriptions.

Every signal is optional. With no signals at all, the highest rated
items on the menu come back first.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewRecommendCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewMenuCmd())
	rootCmd.AddCommand(cli.NewRateCmd())
	rootCmd.AddCommand(cli.NewRatingsCmd())
	rootCmd.AddCommand(cli.NewSuggestCmd())
	rootCmd.AddCommand(cli.NewOrderCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
