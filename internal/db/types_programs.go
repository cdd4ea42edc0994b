package db

import "time"

// Program represents a support program offered by an organization.
// OrganizationName is resolved from the organizations table on read and is
// never written back.
type Program struct {
	ID                  int            `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	OrganizationID      int            `json:"organization_id"`
	OrganizationName    *string        `json:"organization_name,omitempty"`
	ProgramType         string         `json:"program_type"`
	Stage               *string        `json:"stage,omitempty"`
	Sector              *string        `json:"sector,omitempty"`
	EligibilityCriteria map[string]any `json:"eligibility_criteria,omitempty"`
	Cost                *string        `json:"cost,omitempty"`
	Duration            *string        `json:"duration,omitempty"`
	ApplicationDeadline *time.Time     `json:"application_deadline,omitempty"`
	StartDate           *time.Time     `json:"start_date,omitempty"`
	Website             *string        `json:"website,omitempty"`
	ApplicationLink     *string        `json:"application_link,omitempty"`
	IsVerified          bool           `json:"is_verified"`
	IsActive            bool           `json:"is_active"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           *time.Time     `json:"updated_at,omitempty"`
}

// ProgramFilters holds optional filters for listing programs
type ProgramFilters struct {
	Search           string
	OrganizationID   int
	OrganizationName string
	ProgramType      string
	Stage            string
	Sector           string
	IsActive         *bool
}
