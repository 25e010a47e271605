package store

import (
	"database/sql"
	"fmt"
	"time"
)

// A migration runs exactly once, in ascending version order. An applied
// migration must never be rewritten; append a new version instead.
type migration struct {
	version int
	apply   func(db *sql.DB) error
}

var migrations = []migration{
	{version: 1, apply: migrateV1},
}

// migrate brings the schema up to the newest version. The version marker is
// recorded only after a step succeeds, so a failed run resumes from the last
// applied version on retry.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := m.apply(s.db); err != nil {
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if _, err := s.db.Exec(
			`INSERT INTO schema_version (version, applied_at) VALUES (?, ?)`,
			m.version, time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}
	return nil
}

// migrateV1 creates the baseline schema and inserts the default settings row.
func migrateV1(db *sql.DB) error {
	const ddl = `
	CREATE TABLE projects (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		color      TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE tasks (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		title               TEXT NOT NULL,
		description         TEXT,
		project_id          INTEGER REFERENCES projects(id) ON DELETE SET NULL,
		estimated_pomodoros INTEGER NOT NULL DEFAULT 0 CHECK (estimated_pomodoros >= 0),
		completed_pomodoros INTEGER NOT NULL DEFAULT 0 CHECK (completed_pomodoros >= 0),
		is_completed        INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL,
		completed_at        TEXT
	);

	CREATE TABLE pomodoro_sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id          INTEGER REFERENCES tasks(id) ON DELETE SET NULL,
		started_at       TEXT NOT NULL,
		completed_at     TEXT,
		duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
		session_type     TEXT NOT NULL CHECK (session_type IN ('work', 'short_break', 'long_break')),
		interrupted      INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE settings (
		id                         INTEGER PRIMARY KEY CHECK (id = 1),
		work_duration              INTEGER NOT NULL DEFAULT 25 CHECK (work_duration BETWEEN 1 AND 180),
		short_break_duration       INTEGER NOT NULL DEFAULT 5 CHECK (short_break_duration BETWEEN 1 AND 60),
		long_break_duration        INTEGER NOT NULL DEFAULT 15 CHECK (long_break_duration BETWEEN 1 AND 60),
		pomodoros_until_long_break INTEGER NOT NULL DEFAULT 4 CHECK (pomodoros_until_long_break BETWEEN 1 AND 10),
		language                   TEXT NOT NULL DEFAULT 'en' CHECK (language IN ('en', 'fr', 'es', 'it', 'de')),
		theme                      TEXT NOT NULL DEFAULT 'light' CHECK (theme IN ('light', 'dark')),
		notification_sound         TEXT NOT NULL DEFAULT 'default',
		auto_start_breaks          INTEGER NOT NULL DEFAULT 0,
		auto_start_pomodoros       INTEGER NOT NULL DEFAULT 0,
		updated_at                 TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	);

	CREATE INDEX idx_tasks_project   ON tasks(project_id);
	CREATE INDEX idx_tasks_completed ON tasks(is_completed);
	CREATE INDEX idx_sessions_task   ON pomodoro_sessions(task_id);
	CREATE INDEX idx_sessions_date   ON pomodoro_sessions(started_at);

	INSERT INTO settings (id) VALUES (1);
	`
	_, err := db.Exec(ddl)
	return err
}
