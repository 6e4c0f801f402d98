package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStorage implements the Storage interface using a local SQLite
// database with one row per slot.
type SQLiteStorage struct {
	db *sqlx.DB
}

// NewSQLiteStorage opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStorage{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStorage) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Load reads the document stored in the given slot.
func (s *SQLiteStorage) Load(ctx context.Context, slot Slot) ([]byte, error) {
	var doc []byte
	err := s.db.GetContext(ctx, &doc, "SELECT doc FROM slots WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return doc, nil
}

// Save overwrites the document stored in the given slot.
func (s *SQLiteStorage) Save(ctx context.Context, slot Slot, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO slots (slot, doc, updated_at)
		VALUES (?, ?, ?)`,
		slot, doc, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}
	return nil
}

// Delete removes the given slot. Deleting an absent slot is not an error.
func (s *SQLiteStorage) Delete(ctx context.Context, slot Slot) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("deleting slot %s: %w", slot, err)
	}
	return nil
}
