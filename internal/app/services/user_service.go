package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/repositories"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/validation"
)

// updatableFields maps the whitelisted JSON field names to their columns.
// Request keys outside this map are silently ignored.
var updatableFields = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"mobile":      "mobile",
	"rollNumber":  "roll_number",
	"branch":      "branch",
	"year":        "year",
	"profileLink": "profile_link",
	"skills":      "skills",
	"bio":         "bio",
	"linkedin":    "linkedin",
	"github":      "github",
}

// UserService handles profile retrieval and updates
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) error
}

type userService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the full user record. The password hash is excluded at
// the serialization boundary.
func (s *userService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile intersects the request against the whitelist of mutable
// fields and applies a partial merge. An empty intersection is a validation
// error; name changes recompute the derived full name.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) error {
	columns := make(map[string]interface{})
	for field, value := range req {
		column, ok := updatableFields[field]
		if !ok {
			continue
		}

		normalized, err := normalizeFieldValue(field, value)
		if err != nil {
			return err
		}
		columns[column] = normalized
	}

	if len(columns) == 0 {
		return apperrors.NewCustomError(apperrors.ErrNoUpdatableFields, "No updatable fields in request")
	}

	// Keep full_name consistent when either name component changes
	if _, changed := columns["first_name"]; !changed {
		_, changed = columns["last_name"]
		if !changed {
			if err := s.userRepo.UpdateProfile(ctx, userID, columns); err != nil {
				return err
			}
			s.logger.Info().Int64("userID", userID).Int("fields", len(columns)).Msg("Profile updated")
			return nil
		}
	}

	current, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	firstName := current.FirstName
	if v, ok := columns["first_name"].(string); ok {
		firstName = v
	}
	lastName := current.LastName
	if v, ok := columns["last_name"].(string); ok {
		lastName = v
	}
	columns["full_name"] = firstName + " " + lastName

	if err := s.userRepo.UpdateProfile(ctx, userID, columns); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Int("fields", len(columns)).Msg("Profile updated")
	return nil
}

// normalizeFieldValue coerces a JSON value into the column's Go type and
// re-validates the fields with syntactic rules.
func normalizeFieldValue(field string, value interface{}) (interface{}, error) {
	switch field {
	case "skills":
		items, ok := value.([]interface{})
		if !ok {
			return nil, apperrors.NewValidationError("skills must be a list of strings")
		}
		skills := make([]string, 0, len(items))
		for _, item := range items {
			str, ok := item.(string)
			if !ok {
				return nil, apperrors.NewValidationError("skills must be a list of strings")
			}
			skills = append(skills, str)
		}
		return skills, nil

	case "mobile":
		str, ok := value.(string)
		if !ok || !validation.IsValidMobile(str) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidMobile, "Mobile number must be exactly 10 digits")
		}
		return str, nil

	case "profileLink":
		str, ok := value.(string)
		if !ok || !validation.IsValidURL(str) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidURL, "Invalid profile link URL")
		}
		return str, nil

	default:
		str, ok := value.(string)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a string", field))
		}
		return str, nil
	}
}
