package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
)

type mockCollegeRepository struct {
	mock.Mock
}

func (m *mockCollegeRepository) Create(ctx context.Context, college *models.College) error {
	args := m.Called(ctx, college)
	return args.Error(0)
}

func (m *mockCollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *mockCollegeRepository) GetByName(ctx context.Context, name string) (*models.College, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *mockCollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.College), args.Error(1)
}

func (m *mockCollegeRepository) ExistsByNameOrWebsite(ctx context.Context, name, website string) (bool, error) {
	args := m.Called(ctx, name, website)
	return args.Bool(0), args.Error(1)
}

func (m *mockCollegeRepository) SetApproval(ctx context.Context, id int64, approved, rejected bool) error {
	args := m.Called(ctx, id, approved, rejected)
	return args.Error(0)
}

func (m *mockCollegeRepository) CountByStatus(ctx context.Context) (*models.CollegeStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeStats), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, columns map[string]interface{}) error {
	args := m.Called(ctx, userID, columns)
	return args.Error(0)
}
