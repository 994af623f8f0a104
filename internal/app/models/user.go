package models

import (
	"time"
)

// User defines the student account model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the user
	FirstName   string     `json:"firstName" db:"first_name" example:"Ananya"`                              // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Sharma"`                                // User's last name
	FullName    string     `json:"fullName" db:"full_name" example:"Ananya Sharma"`                         // Derived as first + " " + last
	Mobile      string     `json:"mobile" db:"mobile" example:"9876543210"`                                 // Mobile number, exactly 10 digits
	RollNumber  string     `json:"rollNumber" db:"roll_number" example:"21CS1234"`                          // Institutional roll number
	Branch      string     `json:"branch" db:"branch" example:"Computer Science"`                           // Branch of study
	Year        string     `json:"year" db:"year" example:"3"`                                              // Year of study
	Email       string     `json:"email" db:"email" example:"ananya@student.nitw.ac.in"`                    // Institutional email (unique)
	Password    string     `json:"-" db:"password"`                                                         // Hashed password (excluded from JSON)
	ProfileLink string     `json:"profileLink" db:"profile_link" example:"https://linkedin.com/in/ananya"`  // External profile link
	CollegeID   int64      `json:"collegeId" db:"college_id" example:"1"`                                   // Owning college
	Skills      []string   `json:"skills,omitempty" db:"skills" example:"go,sql"`                           // Optional skills list
	Bio         string     `json:"bio,omitempty" db:"bio" example:"Backend enthusiast"`                     // Optional short bio
	Linkedin    string     `json:"linkedin,omitempty" db:"linkedin"`                                        // Optional LinkedIn URL
	Github      string     `json:"github,omitempty" db:"github"`                                            // Optional GitHub URL
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the account is active
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the account was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp of the last profile update
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
}
