package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoad_FullRow(t *testing.T) {
	path := writeCSV(t, `Item,Price,Category,Restaurant,Is_Vegetarian,Tags,Description,Rating
Veg Biryani,250,Main Course,R1,veg,"biryani, family_meal",Aromatic rice with vegetables,4.2
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", store.Len())
	}

	item := store.Items()[0]
	if item.Name != "Veg Biryani" || item.Restaurant != "R1" {
		t.Errorf("unexpected key: %q/%q", item.Name, item.Restaurant)
	}
	if item.Price != 250 {
		t.Errorf("expected price 250, got %f", item.Price)
	}
	if item.Rating != 4.2 {
		t.Errorf("expected rating 4.2, got %f", item.Rating)
	}
	if len(item.Tags) != 2 || item.Tags[0] != "biryani" || item.Tags[1] != "family_meal" {
		t.Errorf("unexpected tags: %v", item.Tags)
	}
	if !item.IsVeg() {
		t.Error("expected vegetarian item")
	}
}

func TestLoad_MissingOptionalColumns(t *testing.T) {
	path := writeCSV(t, `Item,Price,Category,Restaurant,Is_Vegetarian,Tags
Masala Dosa,80,South Indian,R2,veg,crispy
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	item := store.Items()[0]
	if item.Description != "" {
		t.Errorf("expected empty description, got %q", item.Description)
	}
	if item.Rating != 0 {
		t.Errorf("expected zero rating, got %f", item.Rating)
	}
}

func TestLoad_MalformedNumericsCoerced(t *testing.T) {
	path := writeCSV(t, `Item,Price,Category,Restaurant,Is_Vegetarian,Tags,Rating
Pizza,abc,Italian,R3,veg,cheesy,not-a-number
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	item := store.Items()[0]
	if item.Price != 0 {
		t.Errorf("expected coerced price 0, got %f", item.Price)
	}
	if item.Rating != 0 {
		t.Errorf("expected coerced rating 0, got %f", item.Rating)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if store == nil || store.Len() != 0 {
		t.Error("expected usable empty store for missing file")
	}
}

func TestLoad_EmptyCategoryDefaulted(t *testing.T) {
	path := writeCSV(t, `Item,Price,Restaurant,Is_Vegetarian,Tags
Fries,60,R4,veg,snack
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := store.Items()[0].Category; got != "Unknown" {
		t.Errorf("expected category Unknown, got %q", got)
	}
}

func TestStore_Categories(t *testing.T) {
	store := NewStore([]MenuItem{
		{Name: "A", Category: "Main Course"},
		{Name: "B", Category: "Dessert"},
		{Name: "C", Category: "Main Course"},
	})

	categories := store.Categories()
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0] != "Main Course" || categories[1] != "Dessert" {
		t.Errorf("unexpected category order: %v", categories)
	}
}

func TestHasTag_Substring(t *testing.T) {
	item := MenuItem{Tags: []string{"family_meal", "Biryani"}}

	if !item.HasTag("family_meal") {
		t.Error("expected exact tag hit")
	}
	if !item.HasTag("biryani") {
		t.Error("expected case-insensitive hit")
	}
	if !item.HasTag("meal") {
		t.Error("expected substring hit")
	}
	if item.HasTag("pizza") {
		t.Error("unexpected hit")
	}
}
