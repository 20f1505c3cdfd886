package database

import (
	"context"
	"fmt"
	"time"

	"go-jobsearch-automation/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS jobs (
	id BIGSERIAL PRIMARY KEY,
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

type Postgres struct {
	db *pgxpool.Pool
}

func ConnectPostgres(ctx context.Context, connString string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	// Poolers in transaction mode (PgBouncer, Supabase) reject cached prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create jobs table: %w", err)
	}
	log.Info().Msg("🗄️ Postgres job store ready")
	return &Postgres{db: pool}, nil
}

func (r *Postgres) Close() error {
	if r.db != nil {
		r.db.Close()
	}
	return nil
}

func (r *Postgres) AllURLs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx, "SELECT url FROM jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to list job urls: %w", err)
	}
	urls, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan job urls: %w", err)
	}
	set := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		set[u] = struct{}{}
	}
	return set, nil
}

func (r *Postgres) Exists(ctx context.Context, url string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM jobs WHERE url = $1)", url).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check job %s: %w", url, err)
	}
	return exists, nil
}

func (r *Postgres) Insert(ctx context.Context, job models.ScoredJob) (bool, error) {
	query := `
		INSERT INTO jobs (title, company, location, url, description, date_posted, date_found, relevance_score, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (url) DO NOTHING`
	tag, err := r.db.Exec(ctx, query,
		job.Title, job.Company, job.Location, job.URL, job.Description, job.DatePosted, job.DateFound, job.RelevanceScore, job.Source)
	if err != nil {
		return false, fmt.Errorf("failed to save job: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Postgres) Since(ctx context.Context, t time.Time) ([]models.ScoredJob, error) {
	query := `
		SELECT title, company, location, url, description, date_posted, date_found, relevance_score, COALESCE(source, '')
		FROM jobs WHERE date_found > $1
		ORDER BY date_posted DESC, date_found DESC`
	rows, err := r.db.Query(ctx, query, models.FormatDateFound(t))
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs since %s: %w", t, err)
	}
	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ScoredJob, error) {
		var j models.ScoredJob
		err := row.Scan(&j.Title, &j.Company, &j.Location, &j.URL, &j.Description, &j.DatePosted, &j.DateFound, &j.RelevanceScore, &j.Source)
		return j, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return jobs, nil
}
