package ratings

import (
	"fmt"
	"log"
)

// migration represents a single database migration.
type migration struct {
	version int
	name    string
	up      func() error
}

// runMigrations executes database schema migrations.
func (s *SQLiteStore) runMigrations() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	if err := s.createMigrationsTable(); err != nil {
		return err
	}

	version, err := s.currentMigrationVersion()
	if err != nil {
		return err
	}

	migrations := []migration{
		{version: 1, name: "ratings_schema", up: s.migration001RatingsSchema},
	}

	for _, m := range migrations {
		if version < m.version {
			log.Printf("Running migration %d: %s", m.version, m.name)
			if err := m.up(); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
			if err := s.setMigrationVersion(m.version, m.name); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SQLiteStore) createMigrationsTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

func (s *SQLiteStore) currentMigrationVersion() (int, error) {
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")

	var version int
	if err := row.Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (s *SQLiteStore) setMigrationVersion(version int, name string) error {
	_, err := s.db.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", version, name)
	return err
}

// migration001RatingsSchema creates the ratings table. The primary key
// gives the update-in-place semantics: one row per
// (user, item, restaurant).
func (s *SQLiteStore) migration001RatingsSchema() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ratings (
			user_id TEXT NOT NULL,
			item_name TEXT NOT NULL,
			restaurant TEXT NOT NULL,
			rating INTEGER NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (user_id, item_name, restaurant)
		)
	`); err != nil {
		return fmt.Errorf("failed to create ratings table: %w", err)
	}

	if _, err := s.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ratings_user
		ON ratings(user_id)
	`); err != nil {
		return fmt.Errorf("failed to create ratings user index: %w", err)
	}

	return nil
}
