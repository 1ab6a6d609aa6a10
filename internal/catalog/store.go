// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists parsed records in a SQLite database with a
// full-text index, so extraction results can be inspected and queried
// between calibration passes of the rule tables.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chdonahue/art-valuation/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the record catalog SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// Open opens or creates the catalog database at dir/catalog.db,
// creating the schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			indexed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL REFERENCES documents(path),
			record_index INTEGER NOT NULL,
			artist TEXT, title TEXT, medium TEXT, dimensions TEXT,
			date TEXT, description TEXT,
			estimate_low TEXT, estimate_high TEXT, sold_for TEXT,
			auction_house TEXT, sale_date TEXT, lot_number TEXT,
			is_online TEXT,
			UNIQUE(source_path, record_index)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_artist ON records(artist)`,
		`CREATE INDEX IF NOT EXISTS idx_records_house ON records(auction_house)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE records_fts USING fts5(artist, title, description, content=records, content_rowid=rowid)`,
			`CREATE TRIGGER records_ai AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(rowid, artist, title, description)
				VALUES (new.rowid, new.artist, new.title, new.description);
			END`,
			`CREATE TRIGGER records_ad AFTER DELETE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, artist, title, description)
				VALUES('delete', old.rowid, old.artist, old.title, old.description);
			END`,
			`CREATE TRIGGER records_au AFTER UPDATE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, artist, title, description)
				VALUES('delete', old.rowid, old.artist, old.title, old.description);
				INSERT INTO records_fts(rowid, artist, title, description)
				VALUES (new.rowid, new.artist, new.title, new.description);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IndexSummary holds counts from a catalog indexing run.
type IndexSummary struct {
	Documents int
	Records   int
}

// Index replaces the catalog rows of one source document with the
// given records, inside a single transaction.
func (s *Store) Index(ctx context.Context, sourcePath string, records []types.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE source_path = ?`, sourcePath); err != nil {
		return fmt.Errorf("deleting old records: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, indexed_at) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET indexed_at=excluded.indexed_at`,
		sourcePath, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	cols := append([]string{"source_path", "record_index"}, types.Schema...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO records (%s) VALUES (%s)`,
		strings.Join(cols, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		row, ok := rec.Row()
		if !ok {
			return fmt.Errorf("record %d of %s violates the field schema", rec.Index, rec.SourcePath)
		}
		args := make([]any, 0, len(cols))
		args = append(args, sourcePath, rec.Index)
		for _, v := range row {
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting record %d of %s: %w", rec.Index, sourcePath, err)
		}
	}

	return tx.Commit()
}
