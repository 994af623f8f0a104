package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/repositories"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/auth"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/validation"
)

// AuthService handles student registration and authentication
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo    repositories.IUserRepository
	collegeRepo repositories.ICollegeRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	collegeRepo repositories.ICollegeRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		collegeRepo: collegeRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateStudentRegistration checks the syntactic rules for a student registration
func (s *authService) validateStudentRegistration(req *dto.RegisterStudentRequest) error {
	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Invalid email format")
	}

	if !validation.IsValidMobile(req.Mobile) {
		return apperrors.NewCustomError(apperrors.ErrInvalidMobile, "Mobile number must be exactly 10 digits")
	}

	if !validation.IsValidURL(req.ProfileLink) {
		return apperrors.NewCustomError(apperrors.ErrInvalidURL, "Invalid profile link URL")
	}

	return nil
}

// RegisterStudent validates and creates a student account, returning a token
// and a public-safe projection of the new user.
//
// The college is looked up by name and only existence is required; an
// unapproved or rejected college does not block its students from
// registering.
func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.AuthResponse, error) {
	if err := s.validateStudentRegistration(req); err != nil {
		return nil, err
	}

	college, err := s.collegeRepo.GetByName(ctx, req.CollegeName)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		FullName:    req.FirstName + " " + req.LastName,
		Mobile:      req.Mobile,
		RollNumber:  req.RollNumber,
		Branch:      req.Branch,
		Year:        req.Year,
		Email:       req.Email,
		Password:    hashedPassword,
		ProfileLink: req.ProfileLink,
		CollegeID:   college.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().
		Str("email", user.Email).
		Int64("userID", user.ID).
		Str("collegeName", college.Name).
		Msg("Student registered")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.RegisteredUserResponse{
			ID:          user.ID,
			FullName:    user.FullName,
			Email:       user.Email,
			CollegeName: college.Name,
		},
	}, nil
}

// Login authenticates a student and issues a token. Unknown email and wrong
// password produce the identical error so neither condition leaks.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	// Best effort; a failed timestamp write must not fail the login
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	s.logger.Info().Str("email", user.Email).Int64("userID", user.ID).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
