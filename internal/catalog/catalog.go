/*
Package catalog loads and exposes the menu dataset.

The catalog is read from a CSV file once and treated as an immutable
snapshot for the remainder of the process. Missing optional columns are
substituted with safe defaults and malformed numeric fields are coerced
to zero rather than failing the row.
*/
package catalog

import "strings"

// ItemKey uniquely identifies a sellable item. An item name may repeat
// across restaurants; each (name, restaurant) pair is a distinct
// orderable unit.
type ItemKey struct {
	Name       string
	Restaurant string
}

// MenuItem is one row of the menu catalog.
type MenuItem struct {
	// Name is the dish name (e.g. "Veg Biryani").
	Name string `json:"item"`

	// Restaurant is the restaurant offering the dish.
	Restaurant string `json:"restaurant"`

	// Price is the list price, never negative.
	Price float64 `json:"price"`

	// Category is the menu section (e.g. "Main Course").
	Category string `json:"category"`

	// Vegetarian is "veg" or "non-veg".
	Vegetarian string `json:"isVegetarian"`

	// Tags are free-form labels driving occasion/mood/weather boosts.
	Tags []string `json:"tags,omitempty"`

	// Description is optional free text, input to similarity search.
	Description string `json:"description,omitempty"`

	// Rating is the static catalog rating, used only as a tie-break.
	Rating float64 `json:"rating,omitempty"`
}

// Key returns the natural key for the item.
func (m MenuItem) Key() ItemKey {
	return ItemKey{Name: m.Name, Restaurant: m.Restaurant}
}

// IsVeg reports whether the item is vegetarian.
func (m MenuItem) IsVeg() bool {
	return strings.EqualFold(m.Vegetarian, "veg")
}

// HasTag reports whether any of the item's tags contains the given
// keyword as a case-insensitive substring.
func (m MenuItem) HasTag(keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}

// Store holds the loaded catalog snapshot.
type Store struct {
	items []MenuItem
}

// NewStore creates a store over the given items.
func NewStore(items []MenuItem) *Store {
	return &Store{items: items}
}

// Empty returns a store with no items.
func Empty() *Store {
	return &Store{}
}

// Items returns a copy of the catalog rows in load order.
func (s *Store) Items() []MenuItem {
	items := make([]MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of catalog rows.
func (s *Store) Len() int {
	return len(s.items)
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}
