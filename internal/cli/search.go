package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quickbites/quickbites/internal/search"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the 'search' command for hybrid menu search.
func NewSearchCmd() *cobra.Command {
	var category string
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the menu by keyword and description similarity",
		Long:  `Search menu items using BM25 keyword matching fused with TF-IDF
description similarity. An optional category restricts the keyword pass.`,
		Example: `  quickbites search "paneer curry"
  quickbites search biryani --category Biryani
  quickbites search "comfort food" --limit 5 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), category, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Restrict results to a category")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results (0 uses the default)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runSearch(queryText, category string, limit int, jsonOutput bool) error {
	cfg := loadConfig()
	store := loadCatalog(cfg)
	if limit <= 0 {
		limit = cfg.Settings.DefaultLimit
	}

	indexer, err := search.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	defer indexer.Close()

	if err := indexer.IndexCatalog(store); err != nil {
		return fmt.Errorf("failed to index menu: %w", err)
	}

	var results []search.Result
	if category != "" {
		results, err = indexer.SearchCategory(queryText, category, limit)
	} else {
		fusion := search.FusionConfig{
			SemanticWeight: cfg.Settings.SemanticWeight,
			KeywordWeight:  cfg.Settings.KeywordWeight,
		}
		results, err = indexer.SearchHybrid(queryText, store, newSimilarityEngine(), limit, fusion)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No items matched.")
		return nil
	}

	fmt.Printf("Search Results (%d):\n\n", len(results))
	for i, r := range results {
		fmt.Printf("  %d. %s (%s)\n", i+1, r.Name, r.Restaurant)
		fmt.Printf("     Category: %s | ₹%.0f | Relevance: %.3f\n", r.Category, r.Price, r.Score)
		if r.Description != "" {
			fmt.Printf("     %s\n", r.Description)
		}
		fmt.Println()
	}

	return nil
}
