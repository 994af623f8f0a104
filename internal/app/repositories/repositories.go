package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository *CollegeRepository
	UserRepository    *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository: NewCollegeRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
