// ABOUTME: SQLite article store for runs that outgrow a spreadsheet
// ABOUTME: One articles table keyed by URL; a position column keeps record order

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
)

const schema = `
	CREATE TABLE IF NOT EXISTS articles (
		position            INTEGER NOT NULL,
		publication_date    TEXT NOT NULL DEFAULT '',
		title               TEXT NOT NULL DEFAULT '',
		subheading          TEXT NOT NULL DEFAULT '',
		secondary_heading   TEXT NOT NULL DEFAULT '',
		secondary_points    TEXT NOT NULL DEFAULT '',
		content             TEXT NOT NULL DEFAULT '',
		url                 TEXT PRIMARY KEY,
		extracted_sentences TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_articles_position ON articles(position);
`

// Store keeps articles in a SQLite database file
type Store struct {
	path string
}

// NewStore creates a store for the database at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the database location
func (s *Store) Path() string {
	return s.path
}

// Load reads every record in position order. A missing database file, or
// one without the articles table, is an empty store.
func (s *Store) Load(ctx context.Context) ([]domain.Article, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
	}
	defer db.Close()

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'articles'").Scan(&name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT publication_date, title, subheading, secondary_heading,
		       secondary_points, content, url, extracted_sentences
		FROM articles ORDER BY position`)
	if err != nil {
		return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
	}
	defer rows.Close()

	var records []domain.Article
	for rows.Next() {
		var a domain.Article
		var points string
		if err := rows.Scan(&a.PublicationDate, &a.Title, &a.Subheading, &a.SecondaryHeading,
			&points, &a.Content, &a.URL, &a.ExtractedSentences); err != nil {
			return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
		}
		a.SecondaryPoints = domain.SplitPoints(points)
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.StoreLoadError{Path: s.path, Err: err}
	}
	return records, nil
}

// Save replaces the table contents in a single transaction
func (s *Store) Save(ctx context.Context, records []domain.Article) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM articles"); err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (position, publication_date, title, subheading, secondary_heading,
		                      secondary_points, content, url, extracted_sentences)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range records {
		if _, err := stmt.ExecContext(ctx, i, a.PublicationDate, a.Title, a.Subheading,
			a.SecondaryHeading, a.JoinedPoints(), a.Content, a.URL, a.ExtractedSentences); err != nil {
			return fmt.Errorf("failed to insert %s: %w", a.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit articles: %w", err)
	}
	return nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	return db, nil
}
