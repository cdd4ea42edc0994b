package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const mentorColumns = `id, user_id, organization_id, full_name, email, bio, expertise_tags,
	sector_focus, stage_focus, profile_image, office_hours, is_approved, is_active,
	created_at, updated_at`

func scanMentor(row pgx.Row) (*Mentor, error) {
	var m Mentor
	err := row.Scan(&m.ID, &m.UserID, &m.OrganizationID, &m.FullName, &m.Email, &m.Bio, &m.ExpertiseTags,
		&m.SectorFocus, &m.StageFocus, &m.ProfileImage, &m.OfficeHours, &m.IsApproved, &m.IsActive,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMentors retrieves mentor profiles ordered by full name. Unapproved
// profiles are excluded unless includeUnapproved is set.
func (db *DB) ListMentors(ctx context.Context, includeUnapproved bool) ([]Mentor, error) {
	query := `SELECT ` + mentorColumns + ` FROM mentors WHERE is_active = true`
	if !includeUnapproved {
		query += ` AND is_approved = true`
	}
	query += ` ORDER BY full_name, id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	defer rows.Close()

	var mentors []Mentor
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mentor: %w", err)
		}
		mentors = append(mentors, *m)
	}
	return mentors, rows.Err()
}

// GetMentor retrieves a mentor by id, or nil if not found
func (db *DB) GetMentor(ctx context.Context, id int) (*Mentor, error) {
	m, err := scanMentor(db.pool.QueryRow(ctx,
		`SELECT `+mentorColumns+` FROM mentors WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mentor: %w", err)
	}
	return m, nil
}

// CreateMentor inserts a new mentor profile and returns the stored record
func (db *DB) CreateMentor(ctx context.Context, m *Mentor) (*Mentor, error) {
	created, err := scanMentor(db.pool.QueryRow(ctx,
		`INSERT INTO mentors (user_id, organization_id, full_name, email, bio, expertise_tags,
		 sector_focus, stage_focus, profile_image, office_hours, is_approved, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+mentorColumns,
		m.UserID, m.OrganizationID, m.FullName, m.Email, m.Bio, m.ExpertiseTags,
		m.SectorFocus, m.StageFocus, m.ProfileImage, m.OfficeHours, m.IsApproved, m.IsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}
	return created, nil
}

// UpdateMentor updates an existing mentor profile and returns the stored
// record, or nil if the id does not exist
func (db *DB) UpdateMentor(ctx context.Context, m *Mentor) (*Mentor, error) {
	updated, err := scanMentor(db.pool.QueryRow(ctx,
		`UPDATE mentors SET user_id = $2, organization_id = $3, full_name = $4, email = $5,
		 bio = $6, expertise_tags = $7, sector_focus = $8, stage_focus = $9,
		 profile_image = $10, office_hours = $11, is_approved = $12, is_active = $13,
		 updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+mentorColumns,
		m.ID, m.UserID, m.OrganizationID, m.FullName, m.Email,
		m.Bio, m.ExpertiseTags, m.SectorFocus, m.StageFocus,
		m.ProfileImage, m.OfficeHours, m.IsApproved, m.IsActive))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}
	return updated, nil
}

// DeleteMentor removes a mentor profile by id
func (db *DB) DeleteMentor(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mentor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("mentor %d: %w", id, ErrNotFound)
	}
	return nil
}
