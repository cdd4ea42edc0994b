package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const programColumns = `p.id, p.title, p.description, p.organization_id, o.business_name,
	p.program_type, p.stage, p.sector, p.eligibility_criteria, p.cost, p.duration,
	p.application_deadline, p.start_date, p.website, p.application_link,
	p.is_verified, p.is_active, p.created_at, p.updated_at`

const programFrom = ` FROM programs p LEFT JOIN organizations o ON o.id = p.organization_id`

func scanProgram(row pgx.Row) (*Program, error) {
	var p Program
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.OrganizationID, &p.OrganizationName,
		&p.ProgramType, &p.Stage, &p.Sector, &p.EligibilityCriteria, &p.Cost, &p.Duration,
		&p.ApplicationDeadline, &p.StartDate, &p.Website, &p.ApplicationLink,
		&p.IsVerified, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPrograms retrieves programs with optional filters, ordered by title
func (db *DB) ListPrograms(ctx context.Context, filters ProgramFilters) ([]Program, error) {
	query := `SELECT ` + programColumns + programFrom + ` WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.IsActive != nil {
		query += fmt.Sprintf(" AND p.is_active = $%d", argNum)
		args = append(args, *filters.IsActive)
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.description ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}
	if filters.OrganizationID != 0 {
		query += fmt.Sprintf(" AND p.organization_id = $%d", argNum)
		args = append(args, filters.OrganizationID)
		argNum++
	} else if filters.OrganizationName != "" {
		query += fmt.Sprintf(" AND o.business_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.OrganizationName+"%")
		argNum++
	}
	if filters.ProgramType != "" {
		query += fmt.Sprintf(" AND p.program_type ILIKE $%d", argNum)
		args = append(args, "%"+filters.ProgramType+"%")
		argNum++
	}
	if filters.Stage != "" {
		query += fmt.Sprintf(" AND p.stage ILIKE $%d", argNum)
		args = append(args, "%"+filters.Stage+"%")
		argNum++
	}
	if filters.Sector != "" {
		query += fmt.Sprintf(" AND p.sector ILIKE $%d", argNum)
		args = append(args, "%"+filters.Sector+"%")
		argNum++
	}

	query += " ORDER BY COALESCE(p.title, '') ASC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		programs = append(programs, *p)
	}
	return programs, rows.Err()
}

// GetProgram retrieves a program by id with its organization name resolved,
// or nil if not found
func (db *DB) GetProgram(ctx context.Context, id int) (*Program, error) {
	p, err := scanProgram(db.pool.QueryRow(ctx,
		`SELECT `+programColumns+programFrom+` WHERE p.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}
	return p, nil
}

// CreateProgram inserts a new program and returns the stored record
func (db *DB) CreateProgram(ctx context.Context, p *Program) (*Program, error) {
	var id int
	err := db.pool.QueryRow(ctx,
		`INSERT INTO programs (title, description, organization_id, program_type, stage,
		 sector, eligibility_criteria, cost, duration, application_deadline, start_date,
		 website, application_link, is_verified, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id`,
		p.Title, p.Description, p.OrganizationID, p.ProgramType, p.Stage,
		p.Sector, p.EligibilityCriteria, p.Cost, p.Duration, p.ApplicationDeadline, p.StartDate,
		p.Website, p.ApplicationLink, p.IsVerified, p.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	return db.GetProgram(ctx, id)
}

// UpdateProgram updates an existing program and returns the stored record,
// or nil if the id does not exist
func (db *DB) UpdateProgram(ctx context.Context, p *Program) (*Program, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE programs SET title = $2, description = $3, organization_id = $4,
		 program_type = $5, stage = $6, sector = $7, eligibility_criteria = $8,
		 cost = $9, duration = $10, application_deadline = $11, start_date = $12,
		 website = $13, application_link = $14, is_verified = $15, is_active = $16,
		 updated_at = NOW()
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.OrganizationID,
		p.ProgramType, p.Stage, p.Sector, p.EligibilityCriteria,
		p.Cost, p.Duration, p.ApplicationDeadline, p.StartDate,
		p.Website, p.ApplicationLink, p.IsVerified, p.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}
	return db.GetProgram(ctx, p.ID)
}

// UpdateProgramStage sets only the lifecycle stage of a program. Used by the
// batch categorizer.
func (db *DB) UpdateProgramStage(ctx context.Context, id int, stage string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE programs SET stage = $1, updated_at = NOW() WHERE id = $2`, stage, id)
	if err != nil {
		return fmt.Errorf("failed to update program stage: %w", err)
	}
	return nil
}

// DeleteProgram removes a program by id
func (db *DB) DeleteProgram(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("program %d: %w", id, ErrNotFound)
	}
	return nil
}
