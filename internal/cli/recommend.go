package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quickbites/quickbites/internal/prefs"
	"github.com/quickbites/quickbites/internal/ratings"
	"github.com/quickbites/quickbites/internal/recommend"
	"github.com/spf13/cobra"
)

// NewRecommendCmd creates the 'recommend' command for ranked menu
// recommendations.
func NewRecommendCmd() *cobra.Command {
	var category string
	var diet []string
	var queryText string
	var occasion string
	var mood string
	var weatherTemp float64
	var weatherCondition string
	var userID string
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend menu items for the current context",
		Long:  `Score the menu against dietary preferences, occasion, mood,
weather, and a free-text craving, then print the top items.`,
		Example: `  quickbites recommend --query "spicy chicken for dinner"
  quickbites recommend --category Biryani --diet vegetarian
  quickbites recommend --occasion "Family Dinner" --mood Happy
  quickbites recommend --weather-temp 32 --weather-condition sunny
  quickbites recommend --user alice --limit 5 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := recommend.Request{
				Category: category,
				Dietary:  diet,
				Query:    queryText,
				Occasion: occasion,
				Mood:     mood,
				UserID:   userID,
				Limit:    limit,
			}
			if cmd.Flags().Changed("weather-temp") || weatherCondition != "" {
				weather := &recommend.Weather{Condition: weatherCondition}
				if cmd.Flags().Changed("weather-temp") {
					temp := weatherTemp
					weather.Temperature = &temp
				}
				req.Weather = weather
			}
			return runRecommend(req, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Restrict to a menu category (\"All\" disables)")
	cmd.Flags().StringArrayVarP(&diet, "diet", "d", nil, "Dietary preference: vegetarian or non-vegetarian (repeatable)")
	cmd.Flags().StringVarP(&queryText, "query", "q", "", "Free-text craving to match against descriptions")
	cmd.Flags().StringVarP(&occasion, "occasion", "o", "", "Occasion (e.g. \"Family Dinner\", \"Quick Lunch\", Party)")
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood (e.g. Happy, Stressed, Cozy, Adventurous)")
	cmd.Flags().Float64Var(&weatherTemp, "weather-temp", 0, "Current temperature in celsius")
	cmd.Flags().StringVar(&weatherCondition, "weather-condition", "", "Weather condition (rainy, sunny, cloudy)")
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID for rating-based boosts")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results (0 uses the default)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runRecommend loads the catalog and rating store, runs the scoring
// pipeline, and prints the results.
func runRecommend(req recommend.Request, jsonOutput bool) error {
	cfg := loadConfig()
	store := loadCatalog(cfg)

	ratingStore := ratings.NewStoreAt(cfg.Paths.Database)
	if err := ratingStore.Init(); err == nil {
		defer ratingStore.Close()
	}

	boosts, err := recommend.LoadBoosts(cfg.Paths.Boosts)
	if err != nil {
		boosts = recommend.DefaultBoosts()
	}

	engine := recommend.NewEngine(store, ratingStore, newSimilarityEngine(), boosts)
	results := engine.Recommend(req)

	if jsonOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if req.Query != "" {
		if summary := prefs.Extract(req.Query).Summary(); summary != "" {
			fmt.Printf("Detected preferences: %s\n\n", summary)
		}
	}

	if len(results) == 0 {
		fmt.Println("No recommendations matched.")
		return nil
	}

	fmt.Printf("Top Recommendations (%d):\n\n", len(results))
	for i, item := range results {
		fmt.Printf("  %d. %s (%s)\n", i+1, item.Name, item.Restaurant)
		fmt.Printf("     Category: %s | ₹%.0f | Rating: %.1f\n", item.Category, item.Price, item.Rating)
		if len(item.Tags) > 0 {
			fmt.Printf("     Tags: %s\n", strings.Join(item.Tags, ", "))
		}
		if item.Score > 0 {
			fmt.Printf("     Score: %.2f\n", item.Score)
		}
		fmt.Println()
	}

	return nil
}
