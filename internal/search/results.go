/*
Package search implements keyword search over the menu catalog.

This package provides BM25-based keyword search via a Bleve index with
optional hybrid fusion against TF-IDF description similarity for ranked
browse results. It serves the display layer; the recommendation
pipeline scores the catalog directly.
*/
package search

import "github.com/quickbites/quickbites/internal/catalog"

// Result represents a single search result with relevance score.
type Result struct {
	Name        string  `json:"item"`
	Restaurant  string  `json:"restaurant"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Score       float64 `json:"score"`
}

// key returns the natural key of the underlying menu item.
func (r Result) key() catalog.ItemKey {
	return catalog.ItemKey{Name: r.Name, Restaurant: r.Restaurant}
}
