// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps an offline SQLite copy of the normalized
// publication records for search and export outside the dashboard.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

const (
	dbFile            = "catalog.db"
	defaultMaxResults = 20
)

// Year cells are stored as a kind tag plus text and numeric columns so the
// cell round-trips unchanged.
const (
	yearAbsent = "absent"
	yearString = "string"
	yearNumber = "number"
)

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// NewStore opens or creates catalogDir/catalog.db and its schema.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if cfg.CatalogDir == "" {
		return nil, fmt.Errorf("no catalog directory configured")
	}
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS records (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			year_kind TEXT NOT NULL,
			year_text TEXT NOT NULL,
			year_num REAL,
			level_of_evaluation REAL NOT NULL,
			level_of_development REAL NOT NULL,
			programming_languages TEXT NOT NULL,
			tool_usage REAL NOT NULL,
			abstract TEXT NOT NULL,
			contribution TEXT NOT NULL,
			methodology TEXT NOT NULL,
			tools_framework TEXT NOT NULL,
			results TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_year ON records(year_text)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			source TEXT NOT NULL,
			indexed_at TEXT NOT NULL,
			records INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IndexSummary holds counts from an indexing run.
type IndexSummary struct {
	Indexed  int
	Replaced int
}

// Index replaces the catalog contents with records in one transaction.
// source names where the records came from. Progress is written to w.
func (s *Store) Index(ctx context.Context, records []types.PublicationRecord, source string, w io.Writer) (IndexSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var summary IndexSummary
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&summary.Replaced); err != nil {
		return IndexSummary{}, fmt.Errorf("counting records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return IndexSummary{}, fmt.Errorf("deleting old records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (position, title, year_kind, year_text, year_num,
			level_of_evaluation, level_of_development, programming_languages, tool_usage,
			abstract, contribution, methodology, tools_framework, results)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		kind, text, num := encodeYear(r.Year)
		_, err := stmt.ExecContext(ctx,
			i, r.Title, kind, text, num,
			r.LevelOfEvaluation, r.LevelOfDevelopment, r.ProgrammingLanguages, r.ToolUsage,
			r.Abstract, r.Contribution, r.Methodology, r.ToolsFramework, r.Results,
		)
		if err != nil {
			return IndexSummary{}, fmt.Errorf("inserting record %d: %w", i, err)
		}
		summary.Indexed++
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (id, source, indexed_at, records) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			source=excluded.source, indexed_at=excluded.indexed_at, records=excluded.records`,
		source, time.Now().UTC().Format(time.RFC3339Nano), summary.Indexed,
	)
	if err != nil {
		return IndexSummary{}, fmt.Errorf("updating indexing status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return IndexSummary{}, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "indexed %d records from %s (replaced %d)\n", summary.Indexed, source, summary.Replaced)
	return summary, nil
}

// Status describes the last indexing run.
type Status struct {
	Source    string    `json:"source" yaml:"source"`
	IndexedAt time.Time `json:"indexed_at" yaml:"indexed_at"`
	Records   int       `json:"records" yaml:"records"`
}

// Status returns the last indexing run, or a zero Status if the catalog
// has never been indexed.
func (s *Store) Status(ctx context.Context) (Status, error) {
	var (
		st Status
		at string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT source, indexed_at, records FROM indexing_status WHERE id = 1`,
	).Scan(&st.Source, &at, &st.Records)
	if err == sql.ErrNoRows {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("reading indexing status: %w", err)
	}
	st.IndexedAt, err = time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Status{}, fmt.Errorf("parsing indexed_at: %w", err)
	}
	return st, nil
}

func encodeYear(c types.Cell) (kind, text string, num sql.NullFloat64) {
	switch c.Kind {
	case types.CellNumber:
		return yearNumber, c.Text(), sql.NullFloat64{Float64: c.Num, Valid: true}
	case types.CellString:
		return yearString, c.Str, sql.NullFloat64{}
	default:
		return yearAbsent, "", sql.NullFloat64{}
	}
}

func decodeYear(kind, text string, num sql.NullFloat64) types.Cell {
	switch kind {
	case yearNumber:
		if num.Valid {
			return types.NumberCell(num.Float64)
		}
		return types.Cell{}
	case yearString:
		return types.StringCell(text)
	default:
		return types.Cell{}
	}
}
