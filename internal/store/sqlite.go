// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/painpoint-engine/pkg/types"
)

const sqliteTable = "pain_points"

// SQLiteStore persists records in a single SQLite table under the same
// whole-set Load/Save contract as the file backend. Save rewrites the
// table in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS ` + sqliteTable + ` (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		text TEXT NOT NULL,
		title TEXT,
		sentiment_score REAL NOT NULL,
		business_keywords TEXT NOT NULL,
		category TEXT NOT NULL,
		url TEXT NOT NULL UNIQUE,
		date TEXT NOT NULL,
		source TEXT,
		score INTEGER NOT NULL,
		is_liked INTEGER,
		is_unliked INTEGER
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the full record set in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) ([]types.PainPoint, error) {
	query, args, err := sq.Select(
		"id", "text", "title", "sentiment_score", "business_keywords",
		"category", "url", "date", "source", "score", "is_liked", "is_unliked",
	).From(sqliteTable).OrderBy("rowid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := []types.PainPoint{}
	for rows.Next() {
		var (
			r            types.PainPoint
			keywordsJSON string
			dateText     string
			liked        sql.NullBool
			unliked      sql.NullBool
		)
		if err := rows.Scan(
			&r.ID, &r.Text, &r.Title, &r.SentimentScore, &keywordsJSON,
			&r.Category, &r.URL, &dateText, &r.Source, &r.Score, &liked, &unliked,
		); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		if keywordsJSON != "" {
			if err := json.Unmarshal([]byte(keywordsJSON), &r.BusinessKeywords); err != nil {
				return nil, fmt.Errorf("decoding keywords for %s: %w", r.ID, err)
			}
		}
		if r.Date, err = time.Parse(time.RFC3339Nano, dateText); err != nil {
			return nil, fmt.Errorf("parsing date for %s: %w", r.ID, err)
		}
		if liked.Valid {
			r.IsLiked = boolPtr(liked.Bool)
		}
		if unliked.Valid {
			r.IsUnliked = boolPtr(unliked.Bool)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Save replaces the table contents with the given record set atomically.
func (s *SQLiteStore) Save(ctx context.Context, records []types.PainPoint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+sqliteTable); err != nil {
		return fmt.Errorf("clearing table: %w", err)
	}

	for _, r := range records {
		keywordsJSON, err := json.Marshal(r.BusinessKeywords)
		if err != nil {
			return fmt.Errorf("encoding keywords for %s: %w", r.ID, err)
		}

		query, args, err := sq.Insert(sqliteTable).Columns(
			"id", "text", "title", "sentiment_score", "business_keywords",
			"category", "url", "date", "source", "score", "is_liked", "is_unliked",
		).Values(
			r.ID, r.Text, r.Title, r.SentimentScore, string(keywordsJSON),
			r.Category, r.URL, r.Date.Format(time.RFC3339Nano), r.Source,
			r.Score, nullableBool(r.IsLiked), nullableBool(r.IsUnliked),
		).ToSql()
		if err != nil {
			return fmt.Errorf("building insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullableBool(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}
