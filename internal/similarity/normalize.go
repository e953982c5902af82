/*
Package similarity scores menu items against a free-text query using a
TF-IDF vector space over normalized item descriptions.

Normalization reuses the Bleve analysis chain: letter tokenization,
lower-casing, english stop-word removal, and porter stemming. A basic
engine without the stemmer is available as a degraded fallback.
*/
package similarity

import (
	"fmt"
	"unicode"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/porter"
	"github.com/blevesearch/bleve/v2/analysis/token/stop"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/character"
)

// Engine computes query/description relevance scores.
type Engine struct {
	tokenizer analysis.Tokenizer
	filters   []analysis.TokenFilter
}

// NewEngine creates the full normalization chain including the porter
// stemmer.
func NewEngine() (*Engine, error) {
	return newEngine(true)
}

// NewBasicEngine creates the degraded chain: lower-casing, letter
// tokens, and stop-word removal only, without stemming.
func NewBasicEngine() (*Engine, error) {
	return newEngine(false)
}

func newEngine(stem bool) (*Engine, error) {
	stopMap := analysis.NewTokenMap()
	if err := stopMap.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("failed to load stop words: %w", err)
	}

	filters := []analysis.TokenFilter{
		lowercase.NewLowerCaseFilter(),
		stop.NewStopTokensFilter(stopMap),
	}
	if stem {
		filters = append(filters, porter.NewPorterStemmer())
	}

	return &Engine{
		tokenizer: character.NewCharacterTokenizer(unicode.IsLetter),
		filters:   filters,
	}, nil
}

// Normalize runs text through the analysis chain and returns the
// resulting terms. Punctuation and non-alphabetic tokens never survive
// the letter tokenizer.
func (e *Engine) Normalize(text string) []string {
	if text == "" {
		return nil
	}

	stream := e.tokenizer.Tokenize([]byte(text))
	for _, filter := range e.filters {
		stream = filter.Filter(stream)
	}

	terms := make([]string, 0, len(stream))
	for _, token := range stream {
		terms = append(terms, string(token.Term))
	}
	return terms
}
