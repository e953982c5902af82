package cart

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// matchThreshold is the minimum partial ratio for a cart item to
	// trigger a rule.
	matchThreshold = 85

	// maxSuggestions caps the add-ons offered per cart.
	maxSuggestions = 3
)

// Suggest returns add-on suggestions for the given cart item names.
//
// Each cart item is matched against the rule keys with a fuzzy partial
// ratio, so decorated names ("Chicken Biryani (Large)") still trigger
// their base rule. Items already in the cart are never suggested, and
// the result is capped at maxSuggestions.
func Suggest(cartItems []string, rules Rules) []string {
	if len(cartItems) == 0 || len(rules) == 0 {
		return nil
	}

	inCart := make(map[string]bool, len(cartItems))
	for _, name := range cartItems {
		inCart[strings.ToLower(name)] = true
	}

	var suggestions []string
	suggested := make(map[string]bool)

	for _, cartItem := range cartItems {
		if len(suggestions) >= maxSuggestions {
			break
		}

		ruleKey := matchRule(cartItem, rules)
		if ruleKey == "" {
			continue
		}

		for _, addOn := range rules[ruleKey] {
			if len(suggestions) >= maxSuggestions {
				break
			}
			lower := strings.ToLower(addOn)
			if inCart[lower] || suggested[lower] {
				continue
			}
			suggested[lower] = true
			suggestions = append(suggestions, addOn)
		}
	}

	return suggestions
}

// matchRule finds the first rule key whose partial ratio against the
// cart item name clears the threshold.
func matchRule(cartItem string, rules Rules) string {
	lower := strings.ToLower(cartItem)
	best := ""
	bestRatio := matchThreshold

	for key := range rules {
		ratio := fuzzy.PartialRatio(lower, strings.ToLower(key))
		if ratio > bestRatio {
			bestRatio = ratio
			best = key
		}
	}
	return best
}
