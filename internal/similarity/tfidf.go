package similarity

import (
	"math"
	"sort"

	"github.com/quickbites/quickbites/internal/catalog"
)

// noiseThreshold drops near-zero similarities that carry no signal.
const noiseThreshold = 0.01

// Match pairs a menu item with its similarity score in (0, 1].
type Match struct {
	Item  catalog.MenuItem
	Score float64
}

// Search computes cosine similarity between the query and every item's
// description in a shared TF-IDF vector space (the query occupies
// document index 0) and returns at most topN matches above the noise
// threshold, ordered by descending score with ties broken by original
// catalog order.
//
// An empty query, an empty candidate set, or a vocabulary that
// normalizes away entirely all yield an empty result; none of these is
// an error condition.
func (e *Engine) Search(query string, items []catalog.MenuItem, topN int) []Match {
	if len(items) == 0 {
		return nil
	}

	queryTerms := e.Normalize(query)
	if len(queryTerms) == 0 {
		return nil
	}

	docs := make([][]string, 0, len(items)+1)
	docs = append(docs, queryTerms)
	for _, item := range items {
		docs = append(docs, e.Normalize(item.Description))
	}

	vectors, ok := vectorize(docs)
	if !ok {
		return nil
	}

	queryVector := vectors[0]
	matches := make([]Match, 0, len(items))
	for i, item := range items {
		score := dot(queryVector, vectors[i+1])
		if score > noiseThreshold {
			matches = append(matches, Match{Item: item, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

// vectorize builds L2-normalized TF-IDF vectors for each document
// using the smoothed inverse document frequency ln((1+n)/(1+df))+1.
// Returns false when the combined vocabulary is empty.
func vectorize(docs [][]string) ([]map[string]float64, bool) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	if len(df) == 0 {
		return nil, false
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}

	vectors := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		tf := make(map[string]float64, len(doc))
		for _, term := range doc {
			tf[term]++
		}

		vector := make(map[string]float64, len(tf))
		var norm float64
		for term, count := range tf {
			weight := count * idf[term]
			vector[term] = weight
			norm += weight * weight
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range vector {
				vector[term] /= norm
			}
		}
		vectors[i] = vector
	}

	return vectors, true
}

// dot is the cosine similarity of two L2-normalized sparse vectors.
func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, weight := range a {
		sum += weight * b[term]
	}
	return sum
}
