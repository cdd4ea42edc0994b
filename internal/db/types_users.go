package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform account. PasswordHash is never serialized.
type User struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	PasswordSet        bool       `json:"password_set"`
	BusinessStage      *string    `json:"business_stage,omitempty"`
	Sector             *string    `json:"sector,omitempty"`
	Bio                *string    `json:"bio,omitempty"`
	ProfileImage       *string    `json:"profile_image,omitempty"`
	LanguagePreference string     `json:"language_preference"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}
