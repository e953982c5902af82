package search

import (
	"sort"

	"github.com/quickbites/quickbites/internal/catalog"
	"github.com/quickbites/quickbites/internal/similarity"
)

// FusionConfig defines weights for hybrid score fusion.
type FusionConfig struct {
	SemanticWeight float64
	KeywordWeight  float64
}

// DefaultFusionConfig provides balanced fusion (70% semantic, 30% keyword).
var DefaultFusionConfig = FusionConfig{
	SemanticWeight: 0.7,
	KeywordWeight:  0.3,
}

// SearchHybrid combines BM25 keyword scores with TF-IDF description
// similarity. When the similarity engine is nil or produces nothing,
// keyword results are returned as-is.
func (i *Indexer) SearchHybrid(queryText string, store *catalog.Store, sim *similarity.Engine, limit int, config FusionConfig) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	keywordResults, err := i.SearchKeyword(queryText, limit*2)
	if err != nil {
		return nil, err
	}

	if sim == nil {
		return keywordResults, nil
	}

	semanticResults := toResults(sim.Search(queryText, store.Items(), limit*2))
	if len(semanticResults) == 0 {
		return keywordResults, nil
	}

	fused := fuseScores(keywordResults, semanticResults, config)

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score > fused[j].Score
	})

	if len(fused) > limit {
		fused = fused[:limit]
	}
	return fused, nil
}

// toResults converts similarity matches into search results.
func toResults(matches []similarity.Match) []Result {
	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		results = append(results, Result{
			Name:        match.Item.Name,
			Restaurant:  match.Item.Restaurant,
			Category:    match.Item.Category,
			Description: match.Item.Description,
			Price:       match.Item.Price,
			Score:       match.Score,
		})
	}
	return results
}

// fuseScores combines keyword and semantic results using weighted
// fusion. Scores from each source are min/max normalized before the
// weighted combination so the two scales are comparable.
func fuseScores(keywordResults, semanticResults []Result, config FusionConfig) []Result {
	keywordResults = normalizeScores(keywordResults)
	semanticResults = normalizeScores(semanticResults)

	keywordMap := make(map[catalog.ItemKey]Result, len(keywordResults))
	for _, result := range keywordResults {
		keywordMap[result.key()] = result
	}
	semanticMap := make(map[catalog.ItemKey]Result, len(semanticResults))
	for _, result := range semanticResults {
		semanticMap[result.key()] = result
	}

	// Collect unique keys in deterministic order: keyword results
	// first, then semantic-only hits.
	var order []catalog.ItemKey
	seen := make(map[catalog.ItemKey]bool)
	for _, result := range keywordResults {
		if !seen[result.key()] {
			seen[result.key()] = true
			order = append(order, result.key())
		}
	}
	for _, result := range semanticResults {
		if !seen[result.key()] {
			seen[result.key()] = true
			order = append(order, result.key())
		}
	}

	fused := make([]Result, 0, len(order))
	for _, key := range order {
		keywordResult, hasKeyword := keywordMap[key]
		semanticResult, hasSemantic := semanticMap[key]

		var base Result
		var score float64
		switch {
		case hasKeyword && hasSemantic:
			score = config.SemanticWeight*semanticResult.Score + config.KeywordWeight*keywordResult.Score
			base = semanticResult
		case hasKeyword:
			score = config.KeywordWeight * keywordResult.Score
			base = keywordResult
		case hasSemantic:
			score = config.SemanticWeight * semanticResult.Score
			base = semanticResult
		default:
			continue
		}

		base.Score = score
		fused = append(fused, base)
	}

	return fused
}

// normalizeScores normalizes scores to [0, 1] range.
func normalizeScores(results []Result) []Result {
	if len(results) == 0 {
		return results
	}

	minScore := results[0].Score
	maxScore := results[0].Score
	for _, result := range results {
		if result.Score < minScore {
			minScore = result.Score
		}
		if result.Score > maxScore {
			maxScore = result.Score
		}
	}

	normalized := make([]Result, len(results))
	if maxScore == minScore {
		// All scores equal: treat every hit as fully relevant.
		for i, result := range results {
			normalized[i] = result
			normalized[i].Score = 1.0
		}
		return normalized
	}

	for i, result := range results {
		normalized[i] = result
		normalized[i].Score = (result.Score - minScore) / (maxScore - minScore)
	}
	return normalized
}
