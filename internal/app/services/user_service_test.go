package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
)

func TestGetProfile(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	repo.On("GetByID", mock.Anything, int64(42)).Return(&models.User{
		ID:       42,
		FullName: "Ananya Sharma",
	}, nil)

	user, err := svc.GetProfile(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Ananya Sharma", user.FullName)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrUserNotFound)

	_, err := svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile_IgnoresUnknownKeys(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	repo.On("UpdateProfile", mock.Anything, int64(42), map[string]interface{}{
		"bio": "Backend enthusiast",
	}).Return(nil)

	err := svc.UpdateProfile(context.Background(), 42, dto.UpdateProfileRequest{
		"bio":   "Backend enthusiast",
		"email": "attacker@evil.com",
		"id":    int64(1),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_NoUpdatableFields(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	tests := []struct {
		name string
		req  dto.UpdateProfileRequest
	}{
		{"empty request", dto.UpdateProfileRequest{}},
		{"only unknown keys", dto.UpdateProfileRequest{"email": "x@y.com", "isActive": false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateProfile(context.Background(), 42, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrNoUpdatableFields)
		})
	}
	repo.AssertNotCalled(t, "UpdateProfile")
}

func TestUpdateProfile_NameChangeRecomputesFullName(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	repo.On("GetByID", mock.Anything, int64(42)).Return(&models.User{
		ID:        42,
		FirstName: "Ananya",
		LastName:  "Sharma",
	}, nil)
	repo.On("UpdateProfile", mock.Anything, int64(42), map[string]interface{}{
		"last_name": "Verma",
		"full_name": "Ananya Verma",
	}).Return(nil)

	err := svc.UpdateProfile(context.Background(), 42, dto.UpdateProfileRequest{
		"lastName": "Verma",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_BothNamesChanged(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	repo.On("GetByID", mock.Anything, int64(42)).Return(&models.User{
		ID:        42,
		FirstName: "Ananya",
		LastName:  "Sharma",
	}, nil)
	repo.On("UpdateProfile", mock.Anything, int64(42), map[string]interface{}{
		"first_name": "Priya",
		"last_name":  "Verma",
		"full_name":  "Priya Verma",
	}).Return(nil)

	err := svc.UpdateProfile(context.Background(), 42, dto.UpdateProfileRequest{
		"firstName": "Priya",
		"lastName":  "Verma",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_SkillsCoercion(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo, zerolog.Nop())

	// JSON arrays decode as []interface{}; the service converts to []string
	repo.On("UpdateProfile", mock.Anything, int64(42), map[string]interface{}{
		"skills": []string{"go", "sql"},
	}).Return(nil)

	err := svc.UpdateProfile(context.Background(), 42, dto.UpdateProfileRequest{
		"skills": []interface{}{"go", "sql"},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.UpdateProfileRequest
		wantErr error
	}{
		{"bad mobile", dto.UpdateProfileRequest{"mobile": "12345"}, apperrors.ErrInvalidMobile},
		{"mobile not a string", dto.UpdateProfileRequest{"mobile": 9876543210.0}, apperrors.ErrInvalidMobile},
		{"bad profile link", dto.UpdateProfileRequest{"profileLink": "not-a-url"}, apperrors.ErrInvalidURL},
		{"skills not a list", dto.UpdateProfileRequest{"skills": "go"}, apperrors.ErrValidationFailed},
		{"bio not a string", dto.UpdateProfileRequest{"bio": 123.0}, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			svc := NewUserService(repo, zerolog.Nop())

			err := svc.UpdateProfile(context.Background(), 42, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "UpdateProfile")
		})
	}
}
