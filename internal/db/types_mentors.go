package db

import "time"

// Mentor represents an approved mentor or advisor profile
type Mentor struct {
	ID             int            `json:"id"`
	UserID         *int           `json:"user_id,omitempty"`
	OrganizationID *int           `json:"organization_id,omitempty"`
	FullName       string         `json:"full_name"`
	Email          string         `json:"email"`
	Bio            *string        `json:"bio,omitempty"`
	ExpertiseTags  []string       `json:"expertise_tags,omitempty"`
	SectorFocus    *string        `json:"sector_focus,omitempty"`
	StageFocus     *string        `json:"stage_focus,omitempty"`
	ProfileImage   *string        `json:"profile_image,omitempty"`
	OfficeHours    map[string]any `json:"office_hours,omitempty"`
	IsApproved     bool           `json:"is_approved"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}
