// Package db persists launch history in a local sqlite database.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// LaunchEvent is one recorded application launch.
type LaunchEvent struct {
	Script      string `json:"script"`
	EnvRoot     string `json:"env_root"` // empty when launched on the ambient interpreter
	Interpreter string `json:"interpreter"`
	ExitCode    int    `json:"exit_code"`
	Timestamp   int64  `json:"timestamp"`
	Duration    int64  `json:"duration_ms"`
}

// DB wraps the sqlite connection.
type DB struct {
	conn *sql.DB
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local/share/pylaunch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens the default history database (~/.local/share/pylaunch/history.db),
// creating and migrating it as needed.
func Open() (*DB, error) {
	path, err := defaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens a history database at an explicit path.
func OpenPath(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := runMigrations(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

func runMigrations(conn *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// RecordLaunch inserts one launch event.
func (d *DB) RecordLaunch(ctx context.Context, e LaunchEvent) error {
	_, err := d.conn.ExecContext(ctx,
		`INSERT INTO launches (script, env_root, interpreter, exit_code, timestamp, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Script, e.EnvRoot, e.Interpreter, e.ExitCode, e.Timestamp, e.Duration)
	return err
}

// ListLaunches returns the most recent events, newest first.
func (d *DB) ListLaunches(ctx context.Context, limit int) ([]LaunchEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := d.conn.QueryContext(ctx,
		`SELECT script, env_root, interpreter, exit_code, timestamp, duration_ms
		 FROM launches ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LaunchEvent
	for rows.Next() {
		var e LaunchEvent
		if err := rows.Scan(&e.Script, &e.EnvRoot, &e.Interpreter, &e.ExitCode, &e.Timestamp, &e.Duration); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes all recorded launches.
func (d *DB) Clear(ctx context.Context) error {
	_, err := d.conn.ExecContext(ctx, `DELETE FROM launches`)
	return err
}
