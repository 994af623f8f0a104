package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/dberrors"
)

// ICollegeRepository defines the interface for college database operations
type ICollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetByName(ctx context.Context, name string) (*models.College, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	ExistsByNameOrWebsite(ctx context.Context, name, website string) (bool, error)
	SetApproval(ctx context.Context, id int64, approved, rejected bool) error
	CountByStatus(ctx context.Context) (*models.CollegeStats, error)
}

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
	}
}

const collegeColumns = `id, name, email_domains, address, contact_person, website, admin_approved, rejected, created_at, updated_at`

func scanCollege(row pgx.Row) (*models.College, error) {
	var college models.College
	err := row.Scan(
		&college.ID,
		&college.Name,
		&college.EmailDomains,
		&college.Address,
		&college.ContactPerson,
		&college.Website,
		&college.AdminApproved,
		&college.Rejected,
		&college.CreatedAt,
		&college.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// Create inserts a new college in the Pending state
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (name, email_domains, address, contact_person, website)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, admin_approved, rejected, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		college.Name, college.EmailDomains, college.Address, college.ContactPerson, college.Website,
	).Scan(&college.ID, &college.AdminApproved, &college.Rejected, &college.CreatedAt, &college.UpdatedAt)

	if err != nil {
		// The unique indexes close the check-then-insert race
		if dberrors.IsDuplicateConstraintError(err, "colleges_name_key") ||
			dberrors.IsDuplicateConstraintError(err, "colleges_website_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE id = $1`

	college, err := scanCollege(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return college, nil
}

// GetByName retrieves a college by its unique name
func (r *CollegeRepository) GetByName(ctx context.Context, name string) (*models.College, error) {
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE name = $1`

	college, err := scanCollege(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return college, nil
}

// GetAll retrieves all colleges ordered by registration time
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	query := `SELECT ` + collegeColumns + ` FROM colleges ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, err
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// ExistsByNameOrWebsite checks if a college exists by name or website
func (r *CollegeRepository) ExistsByNameOrWebsite(ctx context.Context, name, website string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM colleges WHERE name = $1 OR website = $2)`,
		name, website).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking college existence: %w", err)
	}

	return exists, nil
}

// SetApproval writes the approval flags for a college. Approve and reject
// always set both flags so the states stay mutually exclusive.
func (r *CollegeRepository) SetApproval(ctx context.Context, id int64, approved, rejected bool) error {
	query := `
		UPDATE colleges
		SET admin_approved = $2, rejected = $3, updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id, approved, rejected)
	if err != nil {
		return fmt.Errorf("error updating college approval: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// CountByStatus aggregates college counts by approval status
func (r *CollegeRepository) CountByStatus(ctx context.Context) (*models.CollegeStats, error) {
	var stats models.CollegeStats
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE admin_approved),
			COUNT(*) FILTER (WHERE NOT admin_approved AND NOT rejected),
			COUNT(*) FILTER (WHERE rejected)
		FROM colleges`,
	).Scan(&stats.Total, &stats.Approved, &stats.Pending, &stats.Rejected)

	if err != nil {
		return nil, fmt.Errorf("error counting colleges: %w", err)
	}

	return &stats, nil
}
