package db

import "time"

// Grant represents a funding opportunity. Eligibility criteria and
// requirements arrive as ad hoc JSON with heterogeneous shapes across
// records, so both stay loosely typed.
type Grant struct {
	ID                  int            `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	OrganizationID      *int           `json:"organization_id,omitempty"`
	GrantType           string         `json:"grant_type"`
	AmountMin           *float64       `json:"amount_min,omitempty"`
	AmountMax           *float64       `json:"amount_max,omitempty"`
	EligibilityCriteria map[string]any `json:"eligibility_criteria,omitempty"`
	Sector              *string        `json:"sector,omitempty"`
	ApplicationDeadline *time.Time     `json:"application_deadline,omitempty"`
	ApplicationLink     *string        `json:"application_link,omitempty"`
	Requirements        map[string]any `json:"requirements,omitempty"`
	IsActive            bool           `json:"is_active"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           *time.Time     `json:"updated_at,omitempty"`
}
