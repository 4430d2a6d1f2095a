// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"go-card-defense/internal/card"
)

const discoverySchema = `
CREATE TABLE IF NOT EXISTS card_discoveries (
	card_id TEXT PRIMARY KEY,
	discovered_at INTEGER NOT NULL
);`

// SQLiteStore persists the discovery ledger in a SQLite file.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (and if needed creates) the ledger database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(discoverySchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadLibrary reads every persisted discovery into a fresh Library.
func (s *SQLiteStore) LoadLibrary(ctx context.Context) (*card.Library, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT card_id, discovered_at FROM card_discoveries`)
	if err != nil {
		return nil, fmt.Errorf("query discoveries: %w", err)
	}
	defer rows.Close()

	library := card.NewLibrary()
	for rows.Next() {
		var d card.Discovery
		if err := rows.Scan(&d.CardID, &d.DiscoveredAt); err != nil {
			return nil, fmt.Errorf("scan discovery: %w", err)
		}
		library.Restore(d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate discoveries: %w", err)
	}
	return library, nil
}

// SaveDiscovery upserts one discovery, keeping the earliest timestamp.
func (s *SQLiteStore) SaveDiscovery(ctx context.Context, d card.Discovery) error {
	if strings.TrimSpace(d.CardID) == "" {
		return fmt.Errorf("card id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO card_discoveries (card_id, discovered_at)
		VALUES (?, ?)
		ON CONFLICT(card_id) DO UPDATE SET
			discovered_at = MIN(discovered_at, excluded.discovered_at)`,
		d.CardID, d.DiscoveredAt)
	if err != nil {
		return fmt.Errorf("save discovery: %w", err)
	}
	return nil
}

// SaveLibrary persists the whole ledger in one transaction.
func (s *SQLiteStore) SaveLibrary(ctx context.Context, library *card.Library) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	for _, d := range library.Discoveries() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO card_discoveries (card_id, discovered_at)
			VALUES (?, ?)
			ON CONFLICT(card_id) DO UPDATE SET
				discovered_at = MIN(discovered_at, excluded.discovered_at)`,
			d.CardID, d.DiscoveredAt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save discovery %s: %w", d.CardID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
