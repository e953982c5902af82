package recommend

import (
	"encoding/json"
	"fmt"
	"os"
)

// TagBoost adds Weight to an item's score once for every listed keyword
// found (case-insensitive substring) among the item's tags. Additive
// and uncapped: an item matching five keywords collects five boosts.
type TagBoost struct {
	Weight float64  `json:"weight"`
	Tags   []string `json:"tags"`
}

// ConditionBoost is a weather-condition tag boost. When MinTemp is set
// the boost only applies while the temperature is unset or above it.
type ConditionBoost struct {
	TagBoost
	MinTemp *float64 `json:"minTemp,omitempty"`
}

// WeatherBoosts holds the temperature and condition driven tag boosts.
type WeatherBoosts struct {
	// HotThreshold triggers Cooling when the temperature exceeds it.
	HotThreshold float64 `json:"hotThreshold"`
	// ColdThreshold triggers Warming when the temperature is below it.
	ColdThreshold float64  `json:"coldThreshold"`
	Cooling       TagBoost `json:"cooling"`
	Warming       TagBoost `json:"warming"`
	// Conditions maps a lower-cased weather condition to its boost.
	Conditions map[string]ConditionBoost `json:"conditions"`
}

// BoostConfig is the declarative scoring configuration: context value
// to tag-weight lists. The engine is data-driven; swapping tables does
// not change pipeline behavior.
type BoostConfig struct {
	Occasions map[string]TagBoost `json:"occasions"`
	Moods     map[string]TagBoost `json:"moods"`
	Weather   WeatherBoosts       `json:"weather"`
}

// DefaultBoosts returns the built-in occasion, mood, and weather
// tables.
func DefaultBoosts() BoostConfig {
	sunnyMin := 20.0
	return BoostConfig{
		Occasions: map[string]TagBoost{
			"Quick Lunch":   {Weight: 5, Tags: []string{"quick_lunch", "snack", "light_meal", "roll", "fast_food"}},
			"Family Dinner": {Weight: 5, Tags: []string{"family_meal", "main_course", "shareable", "combo", "biryani", "curry"}},
			"Party":         {Weight: 5, Tags: []string{"party_pack", "bulk", "snack_platter", "pizza", "finger_food", "appetizer"}},
			"Healthy Meal":  {Weight: 5, Tags: []string{"healthy", "salad", "low_calorie", "grilled", "soup", "steamed", "fruit"}},
		},
		Moods: map[string]TagBoost{
			"Happy":       {Weight: 3, Tags: []string{"dessert", "celebration", "treat", "sweet", "ice_cream", "cake", "chocolate"}},
			"Stressed":    {Weight: 3, Tags: []string{"comfort_food", "chocolate", "sweet", "rich", "creamy", "pasta", "pizza"}},
			"Cozy":        {Weight: 3, Tags: []string{"soup", "warm", "tea", "coffee", "comfort_food", "hot_drink", "stew", "pasta"}},
			"Adventurous": {Weight: 3, Tags: []string{"exotic", "new_flavor", "spicy_high", "unique", "fusion", "sushi", "thai"}},
		},
		Weather: WeatherBoosts{
			HotThreshold:  28,
			ColdThreshold: 15,
			Cooling:       TagBoost{Weight: 4, Tags: []string{"cold", "refreshing", "juice", "lassi", "ice_cream", "salad"}},
			Warming:       TagBoost{Weight: 4, Tags: []string{"hot", "warm", "soup", "tea", "coffee", "hearty", "stew", "spicy"}},
			Conditions: map[string]ConditionBoost{
				"rainy": {TagBoost: TagBoost{Weight: 5, Tags: []string{"hot", "soup", "comfort_food", "pakora", "chai", "fried", "warm"}}},
				"sunny": {
					TagBoost: TagBoost{Weight: 3, Tags: []string{"refreshing", "light_meal", "salad", "juice", "fruit", "cold_drink", "ice_cream"}},
					MinTemp:  &sunnyMin,
				},
				"cloudy": {TagBoost: TagBoost{Weight: 1, Tags: []string{"comfort_food"}}},
			},
		},
	}
}

// LoadBoosts reads a boost table override from a JSON file. Sections
// left empty fall back to the defaults so a partial override file only
// replaces the tables it names.
func LoadBoosts(path string) (BoostConfig, error) {
	config := DefaultBoosts()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read boost config: %w", err)
	}

	var override BoostConfig
	if err := json.Unmarshal(data, &override); err != nil {
		return config, fmt.Errorf("failed to parse boost config: %w", err)
	}

	if len(override.Occasions) > 0 {
		config.Occasions = override.Occasions
	}
	if len(override.Moods) > 0 {
		config.Moods = override.Moods
	}
	if override.Weather.HotThreshold > 0 {
		config.Weather.HotThreshold = override.Weather.HotThreshold
	}
	if override.Weather.ColdThreshold > 0 {
		config.Weather.ColdThreshold = override.Weather.ColdThreshold
	}
	if len(override.Weather.Cooling.Tags) > 0 {
		config.Weather.Cooling = override.Weather.Cooling
	}
	if len(override.Weather.Warming.Tags) > 0 {
		config.Weather.Warming = override.Weather.Warming
	}
	if len(override.Weather.Conditions) > 0 {
		config.Weather.Conditions = override.Weather.Conditions
	}

	return config, nil
}
