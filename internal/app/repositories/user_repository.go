package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/apperrors"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, userID int64, columns map[string]interface{}) error
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, first_name, last_name, full_name, mobile, roll_number, branch, year,
		email, password, profile_link, college_id, skills, bio, linkedin, github,
		is_active, created_at, updated_at, last_login_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.FullName,
		&user.Mobile,
		&user.RollNumber,
		&user.Branch,
		&user.Year,
		&user.Email,
		&user.Password,
		&user.ProfileLink,
		&user.CollegeID,
		&user.Skills,
		&user.Bio,
		&user.Linkedin,
		&user.Github,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated fields
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (first_name, last_name, full_name, mobile, roll_number, branch, year,
			email, password, profile_link, college_id, skills, bio, linkedin, github)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, is_active, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.FullName, user.Mobile, user.RollNumber,
		user.Branch, user.Year, user.Email, user.Password, user.ProfileLink,
		user.CollegeID, user.Skills, user.Bio, user.Linkedin, user.Github,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = NOW() WHERE id = $1`, userID)

	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateProfile applies a partial merge of already-whitelisted columns.
// Columns is a map of column name to new value; the caller is responsible
// for restricting keys to mutable columns.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return apperrors.ErrNoUpdatableFields
	}

	// Deterministic column order keeps the statement stable
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	query := `UPDATE users SET updated_at = NOW()`
	args := []interface{}{userID}
	for _, name := range names {
		args = append(args, columns[name])
		query += fmt.Sprintf(", %s = $%d", name, len(args))
	}
	query += ` WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
