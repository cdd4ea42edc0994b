package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const organizationColumns = `id, business_name, business_stage, description, industry,
	business_sector, business_location, legal_structure, business_status, website,
	email, phone_number, social_media, additional_contact_info, created_at, updated_at`

func scanOrganization(row pgx.Row) (*Organization, error) {
	var o Organization
	err := row.Scan(&o.ID, &o.BusinessName, &o.BusinessStage, &o.Description, &o.Industry,
		&o.BusinessSector, &o.BusinessLocation, &o.LegalStructure, &o.BusinessStatus, &o.Website,
		&o.Email, &o.PhoneNumber, &o.SocialMedia, &o.AdditionalContactInfo, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrganizations retrieves all organizations ordered by id
func (db *DB) ListOrganizations(ctx context.Context) ([]Organization, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+organizationColumns+` FROM organizations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, *o)
	}
	return orgs, rows.Err()
}

// GetOrganization retrieves an organization by id, or nil if not found
func (db *DB) GetOrganization(ctx context.Context, id int) (*Organization, error) {
	o, err := scanOrganization(db.pool.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return o, nil
}

// CreateOrganization inserts a new organization and returns the stored record
func (db *DB) CreateOrganization(ctx context.Context, o *Organization) (*Organization, error) {
	created, err := scanOrganization(db.pool.QueryRow(ctx,
		`INSERT INTO organizations (business_name, business_stage, description, industry,
		 business_sector, business_location, legal_structure, business_status, website,
		 email, phone_number, social_media, additional_contact_info)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING `+organizationColumns,
		o.BusinessName, o.BusinessStage, o.Description, o.Industry,
		o.BusinessSector, o.BusinessLocation, o.LegalStructure, o.BusinessStatus, o.Website,
		o.Email, o.PhoneNumber, o.SocialMedia, o.AdditionalContactInfo))
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return created, nil
}

// UpdateOrganization updates an existing organization and returns the stored
// record, or nil if the id does not exist
func (db *DB) UpdateOrganization(ctx context.Context, o *Organization) (*Organization, error) {
	updated, err := scanOrganization(db.pool.QueryRow(ctx,
		`UPDATE organizations SET business_name = $2, business_stage = $3, description = $4,
		 industry = $5, business_sector = $6, business_location = $7, legal_structure = $8,
		 business_status = $9, website = $10, email = $11, phone_number = $12,
		 social_media = $13, additional_contact_info = $14, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+organizationColumns,
		o.ID, o.BusinessName, o.BusinessStage, o.Description,
		o.Industry, o.BusinessSector, o.BusinessLocation, o.LegalStructure,
		o.BusinessStatus, o.Website, o.Email, o.PhoneNumber,
		o.SocialMedia, o.AdditionalContactInfo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return updated, nil
}

// DeleteOrganization removes an organization by id
func (db *DB) DeleteOrganization(ctx context.Context, id int) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("organization %d: %w", id, ErrNotFound)
	}
	return nil
}
