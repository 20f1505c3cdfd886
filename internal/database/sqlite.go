package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-jobsearch-automation/internal/models"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	company TEXT,
	location TEXT,
	url TEXT UNIQUE,
	description TEXT,
	date_posted TEXT,
	date_found TEXT,
	relevance_score INTEGER,
	source TEXT
)`

type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file and its jobs table.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	// modernc sqlite takes pragmas in the DSN
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1) // single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite unreachable: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create jobs table: %w", err)
	}
	log.Info().Str("path", path).Msg("🗄️ SQLite job store ready")
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) AllURLs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url FROM jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to list job urls: %w", err)
	}
	defer rows.Close()

	urls := make(map[string]struct{})
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan job url: %w", err)
		}
		urls[url] = struct{}{}
	}
	return urls, rows.Err()
}

func (s *SQLite) Exists(ctx context.Context, url string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM jobs WHERE url = ?", url).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check job %s: %w", url, err)
	}
	return n > 0, nil
}

func (s *SQLite) Insert(ctx context.Context, job models.ScoredJob) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (title, company, location, url, description, date_posted, date_found, relevance_score, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO NOTHING`,
		job.Title, job.Company, job.Location, job.URL, job.Description, job.DatePosted, job.DateFound, job.RelevanceScore, job.Source)
	if err != nil {
		return false, fmt.Errorf("failed to save job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to save job: %w", err)
	}
	return n == 1, nil
}

func (s *SQLite) Since(ctx context.Context, t time.Time) ([]models.ScoredJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, company, location, url, description, date_posted, date_found, relevance_score, COALESCE(source, '')
		FROM jobs WHERE date_found > ?
		ORDER BY date_posted DESC, date_found DESC`, models.FormatDateFound(t))
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs since %s: %w", t, err)
	}
	defer rows.Close()

	var jobs []models.ScoredJob
	for rows.Next() {
		var j models.ScoredJob
		if err := rows.Scan(&j.Title, &j.Company, &j.Location, &j.URL, &j.Description, &j.DatePosted, &j.DateFound, &j.RelevanceScore, &j.Source); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
