package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the fetch cache table.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS fetch_cache (
			cache_key  TEXT PRIMARY KEY,
			payload    BLOB NOT NULL,
			fetched_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_fetch_cache_fetched_at
			ON fetch_cache(fetched_at)`,

		`DELETE FROM schema_version`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec(
		"INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion,
	); err != nil {
		return err
	}

	return nil
}
