package models

import (
	"time"
)

// ApprovalStatus represents a college's position in the approval workflow
type ApprovalStatus string

const (
	// StatusPending is the initial state: neither approved nor rejected
	StatusPending ApprovalStatus = "Pending"
	// StatusApproved is set by an admin approval
	StatusApproved ApprovalStatus = "Approved"
	// StatusRejected is set by an admin rejection
	StatusRejected ApprovalStatus = "Rejected"
)

// College defines the college model based on the 'colleges' table
type College struct {
	ID            int64     `json:"id" db:"id" example:"1"`                                                 // Unique identifier for the college
	Name          string    `json:"collegeName" db:"name" example:"National Institute of Technology"`       // College name (unique)
	EmailDomains  []string  `json:"emailDomains" db:"email_domains" example:"@student.nitw.ac.in"`          // Accepted institutional email-domain suffixes
	Address       string    `json:"address" db:"address" example:"Warangal, Telangana"`                     // Postal address
	ContactPerson string    `json:"contactPerson" db:"contact_person" example:"Dr. Rao"`                    // Contact person for the registration
	Website       string    `json:"website" db:"website" example:"https://nitw.ac.in"`                      // College website (unique)
	AdminApproved bool      `json:"adminApproved" db:"admin_approved" example:"false"`                      // Whether an admin approved the college
	Rejected      bool      `json:"rejected" db:"rejected" example:"false"`                                 // Whether an admin rejected the college
	CreatedAt     time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`               // Timestamp when the college registered
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`               // Timestamp of the last state change
}

// Status derives the approval state. Approval and rejection are mutually
// exclusive; approve/reject always clear the opposite flag.
func (c *College) Status() ApprovalStatus {
	switch {
	case c.AdminApproved:
		return StatusApproved
	case c.Rejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

// CollegeStats holds counts of colleges by approval status
type CollegeStats struct {
	Total    int64
	Approved int64
	Pending  int64
	Rejected int64
}
