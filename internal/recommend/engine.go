/*
Package recommend implements the multi-signal recommendation scoring
pipeline: per-user rating boosts, hard dietary/category filters,
occasion/mood/weather tag boosts, and a free-text similarity boost,
merged into one ranked, deduplicated list.

Pass order matters: the boosts after the hard filters operate on the
filtered working set, and the query boost re-weights but never removes
rows.
*/
package recommend

import (
	"log"
	"sort"
	"strings"

	"github.com/quickbites/quickbites/internal/catalog"
	"github.com/quickbites/quickbites/internal/ratings"
	"github.com/quickbites/quickbites/internal/similarity"
)

const (
	// highRatingMultiplier scales ratings of 4 and above.
	highRatingMultiplier = 2.0

	// midRatingMultiplier scales a rating of exactly 3.
	midRatingMultiplier = 0.5

	// queryBoostWeight scales similarity scores into the boost range.
	queryBoostWeight = 10.0

	// flatQueryBoost applies when a similarity hit carries no usable score.
	flatQueryBoost = 20.0

	// similarityTopN bounds the similarity pass over the working set.
	similarityTopN = 20

	// defaultLimit bounds the result when the request does not.
	defaultLimit = 10

	// categoryAll is the sentinel disabling the category filter.
	categoryAll = "All"
)

// Weather is the user-supplied weather context. A nil Temperature
// means unset.
type Weather struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Condition   string   `json:"condition,omitempty"`
}

// Request carries every signal a recommendation call can use.
type Request struct {
	Category string
	Dietary  []string
	Query    string
	Occasion string
	Mood     string
	Weather  *Weather
	UserID   string
	Limit    int
}

// ScoredItem is a menu item with its ephemeral recommendation score,
// computed fresh on every call and never persisted.
type ScoredItem struct {
	catalog.MenuItem
	Score float64 `json:"recommendationScore"`
}

// Engine combines the catalog, rating store, boost tables, and
// similarity engine into ranked recommendations.
type Engine struct {
	catalog *catalog.Store
	ratings ratings.Store
	sim     *similarity.Engine
	boosts  BoostConfig
}

// NewEngine creates a recommendation engine. The rating store and
// similarity engine may be nil; the corresponding boosts then
// contribute nothing.
func NewEngine(store *catalog.Store, ratingStore ratings.Store, sim *similarity.Engine, boosts BoostConfig) *Engine {
	if store == nil {
		store = catalog.Empty()
	}
	return &Engine{
		catalog: store,
		ratings: ratingStore,
		sim:     sim,
		boosts:  boosts,
	}
}

// Recommend runs the scoring pipeline and returns at most Limit items
// ordered by descending score. An empty catalog or a request matching
// nothing yields an empty slice, never an error.
func (e *Engine) Recommend(req Request) []ScoredItem {
	items := e.catalog.Items()
	if len(items) == 0 {
		return []ScoredItem{}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	working := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		working = append(working, ScoredItem{MenuItem: item})
	}

	e.applyRatingBoost(working, req.UserID)
	working = applyHardFilters(working, req.Dietary, req.Category)
	applyTagBoost(working, e.boosts.Occasions, req.Occasion)
	applyTagBoost(working, e.boosts.Moods, req.Mood)
	applyWeatherBoost(working, e.boosts.Weather, req.Weather)
	e.applyQueryBoost(working, req.Query)

	// Stable keeps the prior pass order for full ties.
	sort.SliceStable(working, func(i, j int) bool {
		if working[i].Score != working[j].Score {
			return working[i].Score > working[j].Score
		}
		return working[i].Rating > working[j].Rating
	})

	working = dedupe(working)
	if len(working) > limit {
		working = working[:limit]
	}
	return working
}

// applyRatingBoost adds the user's own rating signal: rating*2.0 for
// ratings of 4+, rating*0.5 for a 3, nothing otherwise.
func (e *Engine) applyRatingBoost(working []ScoredItem, userID string) {
	if e.ratings == nil || userID == "" {
		return
	}

	userRatings, err := e.ratings.GetUserRatings(userID)
	if err != nil {
		log.Printf("Warning: failed to load ratings for %s: %v", userID, err)
		return
	}
	if len(userRatings) == 0 {
		return
	}

	for i := range working {
		rating := userRatings[working[i].Key()]
		switch {
		case rating >= 4:
			working[i].Score += float64(rating) * highRatingMultiplier
		case rating == 3:
			working[i].Score += float64(rating) * midRatingMultiplier
		}
	}
}

// applyHardFilters reduces the working set: dietary preference when
// exactly one of vegetarian/non-vegetarian is named, and category when
// given and not the "All" sentinel.
func applyHardFilters(working []ScoredItem, dietary []string, category string) []ScoredItem {
	wantVeg := containsFold(dietary, "vegetarian")
	wantNonVeg := containsFold(dietary, "non-vegetarian")

	filtered := working[:0]
	for _, item := range working {
		if wantVeg && !wantNonVeg && !item.IsVeg() {
			continue
		}
		if wantNonVeg && !wantVeg && !strings.EqualFold(item.Vegetarian, "non-veg") {
			continue
		}
		if category != "" && category != categoryAll && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// applyTagBoost adds the table's weight once per matching keyword for
// a recognized context value. Unrecognized values boost nothing.
func applyTagBoost(working []ScoredItem, table map[string]TagBoost, value string) {
	if value == "" {
		return
	}
	boost, ok := table[value]
	if !ok {
		return
	}

	for i := range working {
		for _, tag := range boost.Tags {
			if working[i].HasTag(tag) {
				working[i].Score += boost.Weight
			}
		}
	}
}

// applyWeatherBoost applies the temperature and condition boosts. The
// boosts are additive; more than one may hit the same row.
func applyWeatherBoost(working []ScoredItem, table WeatherBoosts, weather *Weather) {
	if weather == nil {
		return
	}

	if temp := weather.Temperature; temp != nil {
		if *temp > table.HotThreshold {
			applyAnyTagBoost(working, table.Cooling)
		} else if *temp < table.ColdThreshold {
			applyAnyTagBoost(working, table.Warming)
		}
	}

	condition := strings.ToLower(strings.TrimSpace(weather.Condition))
	if condition == "" {
		return
	}
	boost, ok := table.Conditions[condition]
	if !ok {
		return
	}
	if boost.MinTemp != nil && weather.Temperature != nil && *weather.Temperature <= *boost.MinTemp {
		return
	}
	applyAnyTagBoost(working, boost.TagBoost)
}

// applyAnyTagBoost adds the weight once when any keyword in the list
// hits the row's tags.
func applyAnyTagBoost(working []ScoredItem, boost TagBoost) {
	for i := range working {
		for _, tag := range boost.Tags {
			if working[i].HasTag(tag) {
				working[i].Score += boost.Weight
				break
			}
		}
	}
}

// applyQueryBoost re-weights rows found by the similarity engine. The
// query never removes rows; rows absent from the similarity result
// keep their score. A failing similarity step contributes nothing.
func (e *Engine) applyQueryBoost(working []ScoredItem, query string) {
	if e.sim == nil || strings.TrimSpace(query) == "" {
		return
	}

	candidates := make([]catalog.MenuItem, len(working))
	for i, item := range working {
		candidates[i] = item.MenuItem
	}

	matches := e.sim.Search(query, candidates, similarityTopN)
	if len(matches) == 0 {
		return
	}

	boosts := make(map[catalog.ItemKey]float64, len(matches))
	for _, match := range matches {
		if match.Score > 0 {
			boosts[match.Item.Key()] = match.Score * queryBoostWeight
		} else {
			boosts[match.Item.Key()] = flatQueryBoost
		}
	}

	for i := range working {
		working[i].Score += boosts[working[i].Key()]
	}
}

// dedupe keeps the first occurrence of each natural key. After the
// sort the first occurrence is the highest-scored one.
func dedupe(working []ScoredItem) []ScoredItem {
	seen := make(map[catalog.ItemKey]bool, len(working))
	result := working[:0]
	for _, item := range working {
		key := item.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}

func containsFold(list []string, value string) bool {
	for _, entry := range list {
		if strings.EqualFold(strings.TrimSpace(entry), value) {
			return true
		}
	}
	return false
}
