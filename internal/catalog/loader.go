package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Column names expected in the menu CSV header. Description and Rating
// are optional.
const (
	colItem        = "Item"
	colPrice       = "Price"
	colCategory    = "Category"
	colRestaurant  = "Restaurant"
	colVegetarian  = "Is_Vegetarian"
	colTags        = "Tags"
	colDescription = "Description"
	colRating      = "Rating"
)

// Load reads the menu catalog from a CSV file.
//
// A missing or unreadable file returns an empty store together with the
// error so callers can log it and continue; a missing catalog is never
// fatal to the recommendation pipeline.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("failed to open menu dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Empty(), fmt.Errorf("failed to parse menu dataset: %w", err)
	}
	if len(records) == 0 {
		return Empty(), nil
	}

	// Map header names to column positions.
	header := records[0]
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colItem, colPrice, colCategory, colRestaurant, colVegetarian, colTags} {
		if _, ok := cols[required]; !ok {
			log.Printf("Warning: menu dataset missing column %q, using defaults", required)
		}
	}

	items := make([]MenuItem, 0, len(records)-1)
	for _, record := range records[1:] {
		item := MenuItem{
			Name:        field(record, cols, colItem, "Unknown"),
			Restaurant:  field(record, cols, colRestaurant, "Unknown"),
			Category:    field(record, cols, colCategory, "Unknown"),
			Vegetarian:  field(record, cols, colVegetarian, "Unknown"),
			Description: field(record, cols, colDescription, ""),
			Price:       numericField(record, cols, colPrice),
			Rating:      numericField(record, cols, colRating),
		}
		item.Tags = parseTags(field(record, cols, colTags, ""))
		items = append(items, item)
	}

	return NewStore(items), nil
}

// field extracts a column value, falling back to def when the column is
// absent or the row is short.
func field(record []string, cols map[string]int, name, def string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return def
	}
	value := strings.TrimSpace(record[idx])
	if value == "" {
		return def
	}
	return value
}

// numericField extracts a float column, coercing malformed values to 0.
func numericField(record []string, cols map[string]int, name string) float64 {
	raw := field(record, cols, name, "")
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: non-numeric %s value %q coerced to 0", name, raw)
		return 0
	}
	if value < 0 && name == colPrice {
		return 0
	}
	return value
}

// parseTags splits a comma-separated tag string into trimmed,
// lower-cased tags.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
