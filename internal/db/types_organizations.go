package db

import "time"

// Organization represents a member business or support organization in the
// ecosystem directory.
type Organization struct {
	ID                    int            `json:"id"`
	BusinessName          string         `json:"business_name"`
	BusinessStage         string         `json:"business_stage"` // Idea, Early Stage, Growing Business, Established Business
	Description           string         `json:"description"`
	Industry              string         `json:"industry"`
	BusinessSector        *string        `json:"business_sector,omitempty"`
	BusinessLocation      string         `json:"business_location"`
	LegalStructure        string         `json:"legal_structure"` // Sole Proprietorship, Partnership, Corporation, LLC, Non-Profit, Other
	BusinessStatus        string         `json:"business_status"` // Active, Inactive, Pending, On Hold
	Website               *string        `json:"website,omitempty"`
	Email                 string         `json:"email"`
	PhoneNumber           string         `json:"phone_number"`
	SocialMedia           map[string]any `json:"social_media,omitempty"`
	AdditionalContactInfo *string        `json:"additional_contact_info,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             *time.Time     `json:"updated_at,omitempty"`
}

// Allowed values for enumerated organization fields
var (
	BusinessStages  = []string{"Idea", "Early Stage", "Growing Business", "Established Business"}
	LegalStructures = []string{"Sole Proprietorship", "Partnership", "Corporation", "LLC", "Non-Profit", "Other"}
	BusinessStates  = []string{"Active", "Inactive", "Pending", "On Hold"}
)
