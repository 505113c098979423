package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// schema is applied on every open. CREATE TABLE IF NOT EXISTS keeps it
// idempotent, so a restart (or a retried request after a failure) never
// trips over an already existing table.
const schema = `
CREATE TABLE IF NOT EXISTS workout_record (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	client TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL DEFAULT '',
	exercise TEXT NOT NULL DEFAULT '',
	sets INTEGER NOT NULL DEFAULT 0,
	reps INTEGER NOT NULL DEFAULT 0,
	weight REAL NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_catalog (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	exercise_type TEXT NOT NULL DEFAULT '',
	body_part TEXT NOT NULL DEFAULT '',
	equipment TEXT NOT NULL DEFAULT '',
	level TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS exercise_instruction (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	exercise_id INTEGER NOT NULL,
	step_number INTEGER NOT NULL,
	instruction TEXT NOT NULL,
	FOREIGN KEY (exercise_id) REFERENCES exercise_catalog (id)
);`

type OpenParams struct {
	// Path is the SQLite file path, or ":memory:" for tests.
	Path string
}

// Open opens the single shared file-backed store and ensures the schema.
func Open(ctx context.Context, params OpenParams) (*sql.DB, error) {
	if params.Path == "" {
		return nil, fmt.Errorf("sqlite path empty")
	}

	dsn := params.Path
	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dsn += "?_journal_mode=WAL&_busy_timeout=5000"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite does not handle multiple writers well, keep a single connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := EnsureSchema(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

// EnsureSchema creates the workout_record and exercise catalog tables if
// absent. Safe to call any number of times.
func EnsureSchema(ctx context.Context, sqlDB *sql.DB) error {
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
