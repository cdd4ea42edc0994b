package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innovation-zone/ecosystem-api/internal/config"
	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// UserStore is the slice of user persistence the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateUserProfile(ctx context.Context, u *db.User) (*db.User, error)
}

// CreateUserRequest is the body for user registration.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest is the body for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest is the body for password changes.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}

// UpdateProfileRequest is the body for profile updates.
type UpdateProfileRequest struct {
	Name               string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	BusinessStage      *string `json:"business_stage,omitempty"`
	Sector             *string `json:"sector,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	ProfileImage       *string `json:"profile_image,omitempty"`
	LanguagePreference string  `json:"language_preference,omitempty" validate:"omitempty,len=2"`
}

// UserProfile is the public view of a user, with the password hash excluded.
type UserProfile struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	BusinessStage      *string    `json:"business_stage,omitempty"`
	Sector             *string    `json:"sector,omitempty"`
	Bio                *string    `json:"bio,omitempty"`
	ProfileImage       *string    `json:"profile_image,omitempty"`
	LanguagePreference string     `json:"language_preference,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// LoginResponse is returned from register and login.
type LoginResponse struct {
	User  *UserProfile `json:"user"`
	Token string       `json:"token"`
}

// UserService provides business logic for user account operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

func toUserProfile(u *db.User) *UserProfile {
	if u == nil {
		return nil
	}
	return &UserProfile{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		BusinessStage:      u.BusinessStage,
		Sector:             u.Sector,
		Bio:                u.Bio,
		ProfileImage:       u.ProfileImage,
		LanguagePreference: u.LanguagePreference,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *CreateUserRequest) (*UserProfile, error) {
	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return toUserProfile(user), nil
}

// Login authenticates a user and returns the profile
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*UserProfile, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Unknown email and wrong password return the same generic error.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !user.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toUserProfile(user), nil
}

// GetProfile returns the profile for the given user ID.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toUserProfile(user), nil
}

// UpdateProfile applies a partial profile update and returns the new
// profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserProfile, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.BusinessStage != nil {
		user.BusinessStage = req.BusinessStage
	}
	if req.Sector != nil {
		user.Sector = req.Sector
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}
	if req.LanguagePreference != "" {
		user.LanguagePreference = req.LanguagePreference
	}

	updated, err := s.store.UpdateUserProfile(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if updated == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toUserProfile(updated), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, user.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
