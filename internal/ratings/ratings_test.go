package ratings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quickbites/quickbites/internal/catalog"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewStoreAt(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewStoreAt(dbPath)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file not created")
	}
}

func TestRecordRating_AndLookup(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordRating("user_1", "Paneer Tikka", "R2", 5); err != nil {
		t.Fatalf("RecordRating failed: %v", err)
	}

	ratings, err := store.GetUserRatings("user_1")
	if err != nil {
		t.Fatalf("GetUserRatings failed: %v", err)
	}

	key := catalog.ItemKey{Name: "Paneer Tikka", Restaurant: "R2"}
	if ratings[key] != 5 {
		t.Errorf("expected rating 5, got %d", ratings[key])
	}
}

func TestRecordRating_UpdateInPlace(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordRating("user_1", "Paneer Tikka", "R2", 3); err != nil {
		t.Fatalf("RecordRating failed: %v", err)
	}
	if err := store.RecordRating("user_1", "Paneer Tikka", "R2", 5); err != nil {
		t.Fatalf("RecordRating update failed: %v", err)
	}

	records, err := store.ListRatings("user_1")
	if err != nil {
		t.Fatalf("ListRatings failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after rerating, got %d", len(records))
	}
	if records[0].Rating != 5 {
		t.Errorf("expected superseding rating 5, got %d", records[0].Rating)
	}
}

func TestRecordRating_ClearedNotStacked(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordRating("user_1", "Paneer Tikka", "R2", 5); err != nil {
		t.Fatalf("RecordRating failed: %v", err)
	}
	if err := store.RecordRating("user_1", "Paneer Tikka", "R2", 0); err != nil {
		t.Fatalf("clearing rating failed: %v", err)
	}

	ratings, err := store.GetUserRatings("user_1")
	if err != nil {
		t.Fatalf("GetUserRatings failed: %v", err)
	}
	key := catalog.ItemKey{Name: "Paneer Tikka", Restaurant: "R2"}
	if _, ok := ratings[key]; ok {
		t.Error("cleared rating must not appear as a positive rating")
	}

	// The record itself survives as cleared, not deleted.
	records, err := store.ListRatings("user_1")
	if err != nil {
		t.Fatalf("ListRatings failed: %v", err)
	}
	if len(records) != 1 || records[0].Rating != 0 {
		t.Errorf("expected one cleared record, got %+v", records)
	}
}

func TestRecordRating_Validation(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordRating("", "Item", "R1", 4); err == nil {
		t.Error("expected error for missing user")
	}
	if err := store.RecordRating("user_1", "Item", "R1", 6); err == nil {
		t.Error("expected error for out-of-range rating")
	}
	if err := store.RecordRating("user_1", "Item", "R1", -1); err == nil {
		t.Error("expected error for negative rating")
	}
}

func TestGetUserRatings_ScopedToUser(t *testing.T) {
	store := newTestStore(t)

	if err := store.RecordRating("user_1", "Biryani", "R1", 4); err != nil {
		t.Fatalf("RecordRating failed: %v", err)
	}
	if err := store.RecordRating("user_2", "Biryani", "R1", 2); err != nil {
		t.Fatalf("RecordRating failed: %v", err)
	}

	ratings, err := store.GetUserRatings("user_1")
	if err != nil {
		t.Fatalf("GetUserRatings failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("expected 1 rating for user_1, got %d", len(ratings))
	}
	key := catalog.ItemKey{Name: "Biryani", Restaurant: "R1"}
	if ratings[key] != 4 {
		t.Errorf("expected user_1's own rating, got %d", ratings[key])
	}
}

func TestDisabledStore_NoOps(t *testing.T) {
	store := &SQLiteStore{enabled: false}

	if err := store.Init(); err != nil {
		t.Errorf("disabled Init should be a no-op, got %v", err)
	}
	if err := store.RecordRating("u", "i", "r", 4); err != nil {
		t.Errorf("disabled RecordRating should be a no-op, got %v", err)
	}
	ratings, err := store.GetUserRatings("u")
	if err != nil || len(ratings) != 0 {
		t.Errorf("disabled GetUserRatings should return empty map, got %v, %v", ratings, err)
	}
}
