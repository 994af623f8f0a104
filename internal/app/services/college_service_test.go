package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
)

func validCollegeRequest() *dto.RegisterCollegeRequest {
	return &dto.RegisterCollegeRequest{
		CollegeName:   "National Institute of Technology",
		EmailDomains:  []string{"@nitw.ac.in", "@student.nitw.ac.in"},
		Address:       "Hanamkonda, Telangana",
		ContactPerson: "Dr. Rao",
		Website:       "https://www.nitw.ac.in",
	}
}

func TestRegisterCollege_Success(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())
	req := validCollegeRequest()

	repo.On("ExistsByNameOrWebsite", mock.Anything, req.CollegeName, req.Website).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.College) bool {
		return c.Name == req.CollegeName && !c.AdminApproved && !c.Rejected
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.College).ID = 11
	}).Return(nil)

	id, err := svc.RegisterCollege(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	repo.AssertExpectations(t)
}

func TestRegisterCollege_InvalidWebsite(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	req := validCollegeRequest()
	req.Website = "not-a-url"

	_, err := svc.RegisterCollege(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidURL)
	repo.AssertNotCalled(t, "Create")
}

func TestRegisterCollege_InvalidEmailDomain(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	req := validCollegeRequest()
	req.EmailDomains = []string{"@nitw.ac.in", "nitw.ac.in"}

	_, err := svc.RegisterCollege(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmailDomain)
	repo.AssertNotCalled(t, "Create")
}

func TestRegisterCollege_Duplicate(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())
	req := validCollegeRequest()

	repo.On("ExistsByNameOrWebsite", mock.Anything, req.CollegeName, req.Website).Return(true, nil)

	_, err := svc.RegisterCollege(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrCollegeAlreadyExists)
	repo.AssertNotCalled(t, "Create")
}

func TestApproveCollege_SetsFlags(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	repo.On("SetApproval", mock.Anything, int64(3), true, false).Return(nil)

	require.NoError(t, svc.ApproveCollege(context.Background(), 3))
	repo.AssertExpectations(t)
}

func TestRejectCollege_SetsFlags(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	repo.On("SetApproval", mock.Anything, int64(3), false, true).Return(nil)

	require.NoError(t, svc.RejectCollege(context.Background(), 3))
	repo.AssertExpectations(t)
}

func TestApproveCollege_NotFound(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	repo.On("SetApproval", mock.Anything, int64(99), true, false).Return(apperrors.ErrCollegeNotFound)

	err := svc.ApproveCollege(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestExportCollegesCSV(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	registered := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	repo.On("GetAll", mock.Anything).Return([]*models.College{
		{
			Name:          "National Institute of Technology",
			EmailDomains:  []string{"@nitw.ac.in", "@student.nitw.ac.in"},
			Address:       "Hanamkonda, Telangana",
			ContactPerson: "Dr. Rao",
			Website:       "https://www.nitw.ac.in",
			AdminApproved: true,
			CreatedAt:     registered,
		},
		{
			Name:          "Osmania University",
			EmailDomains:  []string{"@osmania.ac.in"},
			Address:       "Hyderabad, Telangana",
			ContactPerson: "Dr. Devi",
			Website:       "https://www.osmania.ac.in",
			Rejected:      true,
			CreatedAt:     registered,
		},
	}, nil)

	data, err := svc.ExportCollegesCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"College Name", "Email Domains", "Address",
		"Contact Person", "Website", "Status",
		"Registration Date",
	}, records[0])

	assert.Equal(t, []string{
		"National Institute of Technology",
		"@nitw.ac.in, @student.nitw.ac.in",
		"Hanamkonda, Telangana",
		"Dr. Rao",
		"https://www.nitw.ac.in",
		"Approved",
		"2026-03-15 10:30:00",
	}, records[1])

	assert.Equal(t, "Rejected", records[2][5])
}

func TestExportCollegesCSV_Empty(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	repo.On("GetAll", mock.Anything).Return([]*models.College{}, nil)

	data, err := svc.ExportCollegesCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestGetDashboardStats(t *testing.T) {
	repo := new(mockCollegeRepository)
	svc := NewCollegeService(repo, zerolog.Nop())

	repo.On("CountByStatus", mock.Anything).Return(&models.CollegeStats{
		Total:    10,
		Approved: 6,
		Pending:  3,
		Rejected: 1,
	}, nil)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalColleges)
	assert.Equal(t, int64(6), stats.ApprovedColleges)
	assert.Equal(t, int64(3), stats.PendingColleges)
	assert.Equal(t, int64(1), stats.RejectedColleges)
}
