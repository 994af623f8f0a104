package dto

// RegisterCollegeRequest represents a college registration payload
type RegisterCollegeRequest struct {
	CollegeName   string   `json:"collegeName" binding:"required"`
	EmailDomains  []string `json:"emailDomains" binding:"required,min=1"`
	Address       string   `json:"address" binding:"required"`
	ContactPerson string   `json:"contactPerson" binding:"required"`
	Website       string   `json:"website" binding:"required"`
}

// RegisterCollegeResponse is returned after a successful college registration
type RegisterCollegeResponse struct {
	Message   string `json:"message" example:"College registered successfully"`
	CollegeID int64  `json:"collegeId" example:"1"`
}

// CollegeStatsResponse holds dashboard counters by approval status.
// Key names match the original reporting contract.
type CollegeStatsResponse struct {
	TotalColleges    int64 `json:"total_colleges" example:"10"`
	ApprovedColleges int64 `json:"approved_colleges" example:"6"`
	PendingColleges  int64 `json:"pending_colleges" example:"3"`
	RejectedColleges int64 `json:"rejected_colleges" example:"1"`
}
