package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const pathwayColumns = `id, question, answer_options, recommended_resources, created_at, updated_at`

func scanPathway(row pgx.Row) (*Pathway, error) {
	var p Pathway
	err := row.Scan(&p.ID, &p.Question, &p.AnswerOptions, &p.RecommendedResources,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPathways retrieves all pathway questions in catalog order. The matcher
// depends on this ordering: output order follows it.
func (db *DB) ListPathways(ctx context.Context) ([]Pathway, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+pathwayColumns+` FROM pathways ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pathways: %w", err)
	}
	defer rows.Close()

	var pathways []Pathway
	for rows.Next() {
		p, err := scanPathway(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pathway: %w", err)
		}
		pathways = append(pathways, *p)
	}
	return pathways, rows.Err()
}

// GetPathway retrieves a pathway by id, or nil if not found
func (db *DB) GetPathway(ctx context.Context, id int) (*Pathway, error) {
	p, err := scanPathway(db.pool.QueryRow(ctx,
		`SELECT `+pathwayColumns+` FROM pathways WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pathway: %w", err)
	}
	return p, nil
}

// CreatePathway inserts a new pathway question and returns the stored record
func (db *DB) CreatePathway(ctx context.Context, p *Pathway) (*Pathway, error) {
	created, err := scanPathway(db.pool.QueryRow(ctx,
		`INSERT INTO pathways (question, answer_options, recommended_resources)
		 VALUES ($1, $2, $3)
		 RETURNING `+pathwayColumns,
		p.Question, p.AnswerOptions, p.RecommendedResources))
	if err != nil {
		return nil, fmt.Errorf("failed to create pathway: %w", err)
	}
	return created, nil
}

// UpdatePathway updates an existing pathway question and returns the stored
// record, or nil if the id does not exist
func (db *DB) UpdatePathway(ctx context.Context, p *Pathway) (*Pathway, error) {
	updated, err := scanPathway(db.pool.QueryRow(ctx,
		`UPDATE pathways SET question = $2, answer_options = $3,
		 recommended_resources = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+pathwayColumns,
		p.ID, p.Question, p.AnswerOptions, p.RecommendedResources))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update pathway: %w", err)
	}
	return updated, nil
}

// DeletePathway removes a pathway question by id
func (db *DB) DeletePathway(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM pathways WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pathway: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("pathway %d: %w", id, ErrNotFound)
	}
	return nil
}

// ReplacePathways clears all pathways and inserts the given set. Used by the
// seeding command.
func (db *DB) ReplacePathways(ctx context.Context, pathways []Pathway) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM pathways`); err != nil {
		return fmt.Errorf("failed to clear pathways: %w", err)
	}
	for _, p := range pathways {
		_, err := tx.Exec(ctx,
			`INSERT INTO pathways (question, answer_options, recommended_resources)
			 VALUES ($1, $2, $3)`,
			p.Question, p.AnswerOptions, p.RecommendedResources)
		if err != nil {
			return fmt.Errorf("failed to insert pathway %q: %w", p.Question, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit pathways: %w", err)
	}
	return nil
}
