package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// SearchKeyword performs BM25 keyword search using Bleve.
func (i *Indexer) SearchKeyword(queryText string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	searchQuery := i.buildMatchQuery(queryText)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	searchRequest.Fields = []string{"name", "description", "category", "restaurant", "price"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// SearchCategory performs BM25 search scoped to a single category.
func (i *Indexer) SearchCategory(queryText, category string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	// Conjunction query: (match query) AND (category filter)
	matchQuery := i.buildMatchQuery(queryText)
	categoryQuery := bleve.NewMatchPhraseQuery(category)
	categoryQuery.SetField("category")

	conjunctionQuery := bleve.NewConjunctionQuery(matchQuery, categoryQuery)

	searchRequest := bleve.NewSearchRequestOptions(conjunctionQuery, limit, 0, false)
	searchRequest.Fields = []string{"name", "description", "category", "restaurant", "price"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// AllItems retrieves all indexed items (up to limit).
func (i *Indexer) AllItems(limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	query := bleve.NewMatchAllQuery()
	searchRequest := bleve.NewSearchRequestOptions(query, limit, 0, false)
	searchRequest.Fields = []string{"name", "description", "category", "restaurant", "price"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// convertBleveResults converts Bleve search results to our Result
// format.
func convertBleveResults(results *bleve.SearchResult) []Result {
	searchResults := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		description, _ := hit.Fields["description"].(string)
		category, _ := hit.Fields["category"].(string)
		restaurant, _ := hit.Fields["restaurant"].(string)
		price, _ := hit.Fields["price"].(float64)

		searchResults = append(searchResults, Result{
			Name:        name,
			Restaurant:  restaurant,
			Category:    category,
			Description: description,
			Price:       price,
			Score:       hit.Score,
		})
	}

	return searchResults
}
