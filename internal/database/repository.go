// Package database persists accepted jobs. URL is the unique key.
package database

import (
	"context"
	"time"

	"go-jobsearch-automation/internal/models"
)

// Repository is the persisted job store.
type Repository interface {
	// AllURLs returns every stored job URL.
	AllURLs(ctx context.Context) (map[string]struct{}, error)
	Exists(ctx context.Context, url string) (bool, error)
	// Insert stores job and reports false when its URL is already stored.
	Insert(ctx context.Context, job models.ScoredJob) (bool, error)
	// Since returns jobs found after t, newest posting first.
	Since(ctx context.Context, t time.Time) ([]models.ScoredJob, error)
	Close() error
}

// Open picks Postgres when databaseURL is set, the SQLite file otherwise.
func Open(ctx context.Context, databaseURL, sqlitePath string) (Repository, error) {
	if databaseURL != "" {
		pg, err := ConnectPostgres(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	lite, err := OpenSQLite(ctx, sqlitePath)
	if err != nil {
		return nil, err
	}
	return lite, nil
}
