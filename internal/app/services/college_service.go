package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/repositories"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/validation"
)

// csvTimeLayout is the registration-date format in the CSV export
const csvTimeLayout = "2006-01-02 15:04:05"

// CollegeService handles college registration and the approval workflow
type CollegeService interface {
	RegisterCollege(ctx context.Context, req *dto.RegisterCollegeRequest) (int64, error)
	ListColleges(ctx context.Context) ([]*models.College, error)
	ApproveCollege(ctx context.Context, collegeID int64) error
	RejectCollege(ctx context.Context, collegeID int64) error
	ExportCollegesCSV(ctx context.Context) ([]byte, error)
	GetDashboardStats(ctx context.Context) (*dto.CollegeStatsResponse, error)
}

type collegeService struct {
	collegeRepo repositories.ICollegeRepository
	logger      zerolog.Logger
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(collegeRepo repositories.ICollegeRepository, logger zerolog.Logger) CollegeService {
	return &collegeService{
		collegeRepo: collegeRepo,
		logger:      logger,
	}
}

// validateRegistration checks the syntactic rules for a college registration
func (s *collegeService) validateRegistration(req *dto.RegisterCollegeRequest) error {
	if !validation.IsValidURL(req.Website) {
		return apperrors.NewCustomError(apperrors.ErrInvalidURL, "Invalid website URL")
	}

	for _, domain := range req.EmailDomains {
		if !validation.IsValidEmailDomain(domain) {
			return apperrors.NewCustomError(apperrors.ErrInvalidEmailDomain,
				fmt.Sprintf("Invalid email domain format: %s", domain))
		}
	}

	return nil
}

// RegisterCollege validates and inserts a new college in the Pending state
func (s *collegeService) RegisterCollege(ctx context.Context, req *dto.RegisterCollegeRequest) (int64, error) {
	if err := s.validateRegistration(req); err != nil {
		return 0, err
	}

	exists, err := s.collegeRepo.ExistsByNameOrWebsite(ctx, req.CollegeName, req.Website)
	if err != nil {
		return 0, fmt.Errorf("error checking existing college: %w", err)
	}
	if exists {
		return 0, apperrors.ErrCollegeAlreadyExists
	}

	college := &models.College{
		Name:          req.CollegeName,
		EmailDomains:  req.EmailDomains,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Website:       req.Website,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return 0, err
	}

	s.logger.Info().Str("collegeName", college.Name).Int64("collegeID", college.ID).Msg("New college registered")
	return college.ID, nil
}

// ListColleges returns all colleges
func (s *collegeService) ListColleges(ctx context.Context) ([]*models.College, error) {
	return s.collegeRepo.GetAll(ctx)
}

// ApproveCollege marks a college as approved, clearing any prior rejection
func (s *collegeService) ApproveCollege(ctx context.Context, collegeID int64) error {
	if err := s.collegeRepo.SetApproval(ctx, collegeID, true, false); err != nil {
		return err
	}

	s.logger.Info().Int64("collegeID", collegeID).Msg("College approved")
	return nil
}

// RejectCollege marks a college as rejected, clearing any prior approval
func (s *collegeService) RejectCollege(ctx context.Context, collegeID int64) error {
	if err := s.collegeRepo.SetApproval(ctx, collegeID, false, true); err != nil {
		return err
	}

	s.logger.Info().Int64("collegeID", collegeID).Msg("College rejected")
	return nil
}

// ExportCollegesCSV renders all colleges as a CSV report
func (s *collegeService) ExportCollegesCSV(ctx context.Context) ([]byte, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"College Name", "Email Domains", "Address",
		"Contact Person", "Website", "Status",
		"Registration Date",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, college := range colleges {
		record := []string{
			college.Name,
			strings.Join(college.EmailDomains, ", "),
			college.Address,
			college.ContactPerson,
			college.Website,
			string(college.Status()),
			college.CreatedAt.Format(csvTimeLayout),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("error flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// GetDashboardStats returns college counts by approval status
func (s *collegeService) GetDashboardStats(ctx context.Context) (*dto.CollegeStatsResponse, error) {
	stats, err := s.collegeRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CollegeStatsResponse{
		TotalColleges:    stats.Total,
		ApprovedColleges: stats.Approved,
		PendingColleges:  stats.Pending,
		RejectedColleges: stats.Rejected,
	}, nil
}
