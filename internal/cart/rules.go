/*
Package cart provides smart-cart add-on suggestions.

Suggestion rules map a dish key to items that pair well with it. Cart
item names are matched against rule keys with a fuzzy partial ratio so
"Chicken Biryani (Large)" still triggers the "Biryani" rule.
*/
package cart

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Rules maps a dish key to suggested add-on item names.
type Rules map[string][]string

// DefaultRules returns the seeded suggestion rules.
func DefaultRules() Rules {
	return Rules{
		"Biryani":              {"Raita", "Coca-Cola (300ml)", "Gulab Jamun (2 pcs)"},
		"Pizza":                {"Garlic Naan", "Pepsi (300ml)", "Chocolate Ice Cream (2 scoops)"},
		"Burger":               {"French Fries", "Coca-Cola (300ml)"},
		"Paneer Butter Masala": {"Butter Naan", "Jeera Rice"},
	}
}

// LoadRules reads suggestion rules from a JSON file. A missing or
// corrupt file is replaced with the defaults, which are also written
// back so the file exists for editing.
func LoadRules(path string) Rules {
	data, err := os.ReadFile(path)
	if err == nil {
		var rules Rules
		if err := json.Unmarshal(data, &rules); err == nil && len(rules) > 0 {
			return rules
		}
		log.Printf("Warning: invalid cart rules in %s, using defaults", path)
	}

	rules := DefaultRules()
	if err := SaveRules(path, rules); err != nil {
		log.Printf("Warning: failed to seed cart rules: %v", err)
	}
	return rules
}

// SaveRules writes suggestion rules to a JSON file.
func SaveRules(path string, rules Rules) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create rules directory: %w", err)
	}

	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cart rules: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cart rules: %w", err)
	}
	return nil
}
