package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/quickbites/quickbites/internal/ratings"
	"github.com/spf13/cobra"
)

// NewRateCmd creates the 'rate' command for recording item ratings.
func NewRateCmd() *cobra.Command {
	var userID string
	var restaurant string

	cmd := &cobra.Command{
		Use:   "rate [item] [rating]",
		Short: "Rate a menu item from 0 to 5",
		Long:  `Record a rating for a menu item. Rating a previously rated item
replaces the old value. A rating of 0 clears the item's influence on
recommendations.`,
		Example: `  quickbites rate "Chicken Biryani" 5 --restaurant "Spice Garden" --user alice
  quickbites rate "Margherita Pizza" 0 --restaurant "Pizza Hub" --user alice  # clear`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be an integer from 0 to 5: %q", args[1])
			}
			return runRate(userID, args[0], restaurant, rating)
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID recording the rating (required)")
	cmd.Flags().StringVarP(&restaurant, "restaurant", "r", "", "Restaurant serving the item (required)")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("restaurant")

	return cmd
}

func runRate(userID, itemName, restaurant string, rating int) error {
	cfg := loadConfig()

	store := ratings.NewStoreAt(cfg.Paths.Database)
	if err := store.Init(); err != nil {
		return fmt.Errorf("rating store unavailable: %w", err)
	}
	defer store.Close()

	if err := store.RecordRating(userID, itemName, restaurant, rating); err != nil {
		return fmt.Errorf("failed to record rating: %w", err)
	}

	if rating == 0 {
		fmt.Printf("Cleared rating for %s (%s)\n", itemName, restaurant)
	} else {
		fmt.Printf("Rated %s (%s): %d/5\n", itemName, restaurant, rating)
	}
	return nil
}

// NewRatingsCmd creates the 'ratings' command for listing a user's
// recorded ratings.
func NewRatingsCmd() *cobra.Command {
	var userID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "ratings",
		Short:   "List a user's recorded ratings",
		Example: `  quickbites ratings --user alice
  quickbites ratings --user alice --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRatings(userID, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID to list ratings for (required)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.MarkFlagRequired("user")

	return cmd
}

func runRatings(userID string, jsonOutput bool) error {
	cfg := loadConfig()

	store := ratings.NewStoreAt(cfg.Paths.Database)
	if err := store.Init(); err != nil {
		return fmt.Errorf("rating store unavailable: %w", err)
	}
	defer store.Close()

	records, err := store.ListRatings(userID)
	if err != nil {
		return fmt.Errorf("failed to list ratings: %w", err)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ratings: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Printf("No ratings recorded for %s.\n", userID)
		return nil
	}

	fmt.Printf("Ratings for %s (%d):\n\n", userID, len(records))
	for _, r := range records {
		if r.Rating == 0 {
			fmt.Printf("  %s (%s): cleared\n", r.ItemName, r.Restaurant)
		} else {
			fmt.Printf("  %s (%s): %d/5\n", r.ItemName, r.Restaurant, r.Rating)
		}
	}

	return nil
}
