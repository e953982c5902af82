/*
Package ratings implements persistent per-user per-item rating records.

Ratings are stored in SQLite at ~/.quickbites/quickbites.db using
modernc.org/sqlite (pure Go, CGo-free) with graceful degradation if the
database is unavailable: every operation becomes a no-op returning
neutral values, never an error that stops the recommendation pipeline.
*/
package ratings

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/quickbites/quickbites/internal/catalog"

	_ "modernc.org/sqlite"
)

// Record is one rating entry. One logical record exists per
// (user, item, restaurant) key; a later write supersedes the earlier
// one. Rating 0 means "cleared", not a real rating.
type Record struct {
	UserID     string    `json:"userId"`
	ItemName   string    `json:"itemName"`
	Restaurant string    `json:"restaurant"`
	Rating     int       `json:"rating"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Store defines the rating persistence operations.
type Store interface {
	// Init opens the database and runs migrations.
	Init() error

	// RecordRating adds or updates a rating (0 clears, range 0..5).
	RecordRating(userID, itemName, restaurant string, rating int) error

	// GetUserRatings returns the user's positive ratings keyed by item.
	GetUserRatings(userID string) (map[catalog.ItemKey]int, error)

	// ListRatings returns all of a user's records, cleared ones included.
	ListRatings(userID string) ([]Record, error)

	// Close closes the database connection.
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewStore creates a store at the default path ~/.quickbites/quickbites.db.
func NewStore() *SQLiteStore {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: failed to get home directory: %v", err)
		return &SQLiteStore{enabled: false}
	}
	return NewStoreAt(filepath.Join(home, ".quickbites", "quickbites.db"))
}

// NewStoreAt creates a store backed by the given database path.
func NewStoreAt(dbPath string) *SQLiteStore {
	return &SQLiteStore{dbPath: dbPath, enabled: true}
}

// Init opens the database and runs migrations.
//
// If initialization fails, the store is disabled and subsequent
// operations become no-ops (graceful degradation).
func (s *SQLiteStore) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// RecordRating adds or updates a rating for a (user, item, restaurant)
// key. Update-in-place: records are never physically deleted, a rating
// of 0 marks the entry as cleared.
func (s *SQLiteStore) RecordRating(userID, itemName, restaurant string, rating int) error {
	if !s.enabled || s.db == nil {
		return nil
	}
	if userID == "" || itemName == "" || restaurant == "" {
		return fmt.Errorf("user, item, and restaurant are required")
	}
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5, got %d", rating)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO ratings (user_id, item_name, restaurant, rating, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, item_name, restaurant)
		DO UPDATE SET rating = excluded.rating, updated_at = excluded.updated_at
	`

	_, err := s.db.Exec(query, userID, itemName, restaurant, rating, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record rating: %w", err)
	}
	return nil
}

// GetUserRatings returns a lookup of the user's ratings keyed by
// (item, restaurant). Cleared entries (rating 0) are omitted.
func (s *SQLiteStore) GetUserRatings(userID string) (map[catalog.ItemKey]int, error) {
	result := make(map[catalog.ItemKey]int)
	if !s.enabled || s.db == nil {
		return result, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT item_name, restaurant, rating
		FROM ratings
		WHERE user_id = ? AND rating > 0
	`, userID)
	if err != nil {
		log.Printf("Warning: failed to query ratings: %v", err)
		return result, nil
	}
	defer rows.Close()

	for rows.Next() {
		var key catalog.ItemKey
		var rating int
		if err := rows.Scan(&key.Name, &key.Restaurant, &rating); err != nil {
			log.Printf("Warning: failed to scan rating row: %v", err)
			continue
		}
		result[key] = rating
	}
	return result, rows.Err()
}

// ListRatings returns all of a user's records ordered by recency,
// cleared entries included.
func (s *SQLiteStore) ListRatings(userID string) ([]Record, error) {
	if !s.enabled || s.db == nil {
		return []Record{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT user_id, item_name, restaurant, rating, updated_at
		FROM ratings
		WHERE user_id = ?
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		log.Printf("Warning: failed to query ratings: %v", err)
		return []Record{}, nil
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var updatedAt string
		if err := rows.Scan(&record.UserID, &record.ItemName, &record.Restaurant, &record.Rating, &updatedAt); err != nil {
			log.Printf("Warning: failed to scan rating row: %v", err)
			continue
		}
		if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			record.UpdatedAt = ts
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.db = nil
	return nil
}
