package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const grantColumns = `id, title, description, organization_id, grant_type, amount_min,
	amount_max, eligibility_criteria, sector, application_deadline, application_link,
	requirements, is_active, created_at, updated_at`

func scanGrant(row pgx.Row) (*Grant, error) {
	var g Grant
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.OrganizationID, &g.GrantType, &g.AmountMin,
		&g.AmountMax, &g.EligibilityCriteria, &g.Sector, &g.ApplicationDeadline, &g.ApplicationLink,
		&g.Requirements, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGrants retrieves all active grants ordered by id. Pass includeInactive
// to also return deactivated records.
func (db *DB) ListGrants(ctx context.Context, includeInactive bool) ([]Grant, error) {
	query := `SELECT ` + grantColumns + ` FROM grants`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var grants []Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, *g)
	}
	return grants, rows.Err()
}

// GetGrant retrieves a grant by id, or nil if not found
func (db *DB) GetGrant(ctx context.Context, id int) (*Grant, error) {
	g, err := scanGrant(db.pool.QueryRow(ctx,
		`SELECT `+grantColumns+` FROM grants WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}
	return g, nil
}

// CreateGrant inserts a new grant and returns the stored record
func (db *DB) CreateGrant(ctx context.Context, g *Grant) (*Grant, error) {
	created, err := scanGrant(db.pool.QueryRow(ctx,
		`INSERT INTO grants (title, description, organization_id, grant_type, amount_min,
		 amount_max, eligibility_criteria, sector, application_deadline, application_link,
		 requirements, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+grantColumns,
		g.Title, g.Description, g.OrganizationID, g.GrantType, g.AmountMin,
		g.AmountMax, g.EligibilityCriteria, g.Sector, g.ApplicationDeadline, g.ApplicationLink,
		g.Requirements, g.IsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}
	return created, nil
}

// UpdateGrant updates an existing grant and returns the stored record, or nil
// if the id does not exist
func (db *DB) UpdateGrant(ctx context.Context, g *Grant) (*Grant, error) {
	updated, err := scanGrant(db.pool.QueryRow(ctx,
		`UPDATE grants SET title = $2, description = $3, organization_id = $4,
		 grant_type = $5, amount_min = $6, amount_max = $7, eligibility_criteria = $8,
		 sector = $9, application_deadline = $10, application_link = $11,
		 requirements = $12, is_active = $13, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+grantColumns,
		g.ID, g.Title, g.Description, g.OrganizationID,
		g.GrantType, g.AmountMin, g.AmountMax, g.EligibilityCriteria,
		g.Sector, g.ApplicationDeadline, g.ApplicationLink,
		g.Requirements, g.IsActive))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update grant: %w", err)
	}
	return updated, nil
}

// DeleteGrant removes a grant by id
func (db *DB) DeleteGrant(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM grants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("grant %d: %w", id, ErrNotFound)
	}
	return nil
}
