package prefs

import (
	"fmt"
	"strings"
)

// Signal is the structured output of preference extraction.
type Signal struct {
	Spicy         bool     `json:"spicy"`
	Sweet         bool     `json:"sweet"`
	Healthy       bool     `json:"healthy"`
	Vegetarian    bool     `json:"vegetarian"`
	NonVegetarian bool     `json:"nonVegetarian"`
	MealType      string   `json:"mealType,omitempty"`
	Taste         []string `json:"taste,omitempty"`
	CookingStyle  []string `json:"cookingStyle,omitempty"`
}

// Extract scans a free-text query against the keyword taxonomy.
//
// Meal type resolves first and its matched substring is removed from
// the working text. Flag matches never mutate the text; overlapping
// flag keywords ("veg" inside "non-veg") must all get their chance to
// match so Vegetarian and NonVegetarian stay mutually exclusive with
// last-write-wins. Matched flag keywords are remembered instead, and
// the taste/cooking-style lists skip them so a keyword claimed by a
// flag is not also counted as a taste. Empty input returns the zero
// signal, never an error.
func Extract(query string) Signal {
	var signal Signal
	text := strings.ToLower(strings.TrimSpace(query))
	if text == "" {
		return signal
	}

	for _, meal := range mealTypes {
		if strings.Contains(text, meal) {
			signal.MealType = meal
			text = strings.TrimSpace(strings.Replace(text, meal, "", 1))
			break
		}
	}

	claimed := make(map[string]bool)
	for _, cat := range foodTerms {
		for _, term := range cat.terms {
			if !strings.Contains(text, term) {
				continue
			}
			switch cat.kind {
			case kindFlag:
				setFlag(&signal, cat.name)
				claimed[term] = true
			case kindList:
				if !claimed[term] {
					appendDistinct(&signal, cat.name, term)
				}
			}
		}
	}

	return signal
}

func setFlag(signal *Signal, name string) {
	switch name {
	case "spicy":
		signal.Spicy = true
	case "sweet":
		signal.Sweet = true
	case "healthy":
		signal.Healthy = true
	case "vegetarian":
		signal.Vegetarian = true
		signal.NonVegetarian = false
	case "non_vegetarian":
		signal.NonVegetarian = true
		signal.Vegetarian = false
	}
}

func appendDistinct(signal *Signal, name, term string) {
	switch name {
	case "taste":
		if !contains(signal.Taste, term) {
			signal.Taste = append(signal.Taste, term)
		}
	case "cooking_style":
		if !contains(signal.CookingStyle, term) {
			signal.CookingStyle = append(signal.CookingStyle, term)
		}
	}
}

func contains(list []string, term string) bool {
	for _, entry := range list {
		if entry == term {
			return true
		}
	}
	return false
}

// IsZero reports whether no preference was detected.
func (s Signal) IsZero() bool {
	return !s.Spicy && !s.Sweet && !s.Healthy && !s.Vegetarian && !s.NonVegetarian &&
		s.MealType == "" && len(s.Taste) == 0 && len(s.CookingStyle) == 0
}

// Summary renders a short human-readable description of the detected
// preferences for display alongside recommendations.
func (s Signal) Summary() string {
	if s.IsZero() {
		return ""
	}

	var parts []string
	if s.Spicy {
		parts = append(parts, "spicy")
	}
	if s.Sweet {
		parts = append(parts, "sweet")
	}
	if s.Healthy {
		parts = append(parts, "healthy")
	}
	if s.Vegetarian {
		parts = append(parts, "vegetarian")
	}
	if s.NonVegetarian {
		parts = append(parts, "non-vegetarian")
	}
	if len(s.Taste) > 0 {
		parts = append(parts, fmt.Sprintf("taste: %s", strings.Join(s.Taste, ", ")))
	}
	if len(s.CookingStyle) > 0 {
		parts = append(parts, fmt.Sprintf("style: %s", strings.Join(s.CookingStyle, ", ")))
	}
	if s.MealType != "" {
		parts = append(parts, fmt.Sprintf("for %s", s.MealType))
	}
	return strings.Join(parts, ", ")
}
