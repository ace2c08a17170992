package history

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the newest migration this build knows.
const SchemaVersion = 2

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS commit_snapshots (
  project TEXT NOT NULL,
  commit_hash TEXT NOT NULL,
  fetched_at_utc TEXT NOT NULL,
  raw_count INTEGER NOT NULL,
  unique_count INTEGER NOT NULL,
  PRIMARY KEY (project, commit_hash)
);
CREATE INDEX IF NOT EXISTS idx_commit_snapshots_fetched ON commit_snapshots(project, fetched_at_utc);
`,
	},
	{
		version: 2,
		sql: `
ALTER TABLE commit_snapshots ADD COLUMN rule_counts_json TEXT NOT NULL DEFAULT '{}';
`,
	},
}

// EnsureSchema applies pending migrations in order.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  applied_at_utc TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
);
`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema_migrations version: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", current, SchemaVersion)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?)`, m.version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}
	return nil
}
