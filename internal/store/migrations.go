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

// migrateV1 creates the tasks table and its indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL,
			activity        TEXT NOT NULL,
			task_date       TEXT NOT NULL,
			planned_minutes INTEGER NOT NULL DEFAULT 0,
			actual_minutes  INTEGER NOT NULL DEFAULT 0,
			is_completed    BOOLEAN NOT NULL DEFAULT 0,
			category        TEXT NOT NULL DEFAULT 'Other',
			priority        TEXT NOT NULL DEFAULT 'Medium',
			notes           TEXT NOT NULL DEFAULT '',
			created_at      TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks(user_id, task_date)`,

		`CREATE INDEX IF NOT EXISTS idx_tasks_created ON tasks(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return nil
}
