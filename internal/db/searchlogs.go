package db

import (
	"context"
	"fmt"
)

// CreateSearchLog records a search query and its result count
func (db *DB) CreateSearchLog(ctx context.Context, query string, resultsCount int) (*SearchLog, error) {
	var sl SearchLog
	err := db.pool.QueryRow(ctx,
		`INSERT INTO search_logs (query, results_count)
		 VALUES ($1, $2)
		 RETURNING id, query, results_count, created_at`,
		query, resultsCount,
	).Scan(&sl.ID, &sl.Query, &sl.ResultsCount, &sl.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create search log: %w", err)
	}
	return &sl, nil
}

// ListSearchLogs retrieves search logs, newest first
func (db *DB) ListSearchLogs(ctx context.Context) ([]SearchLog, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, query, results_count, created_at
		 FROM search_logs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list search logs: %w", err)
	}
	defer rows.Close()

	var logs []SearchLog
	for rows.Next() {
		var sl SearchLog
		if err := rows.Scan(&sl.ID, &sl.Query, &sl.ResultsCount, &sl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search log: %w", err)
		}
		logs = append(logs, sl)
	}
	return logs, rows.Err()
}
