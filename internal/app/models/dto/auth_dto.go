package dto

// RegisterStudentRequest represents a student registration payload
type RegisterStudentRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	RollNumber  string `json:"rollNumber" binding:"required"`
	Branch      string `json:"branch" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	ProfileLink string `json:"profileLink" binding:"required"`
	CollegeName string `json:"collegeName" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"604800"`
}

// RegisteredUserResponse is the public-safe projection of a new user
type RegisteredUserResponse struct {
	ID          int64  `json:"id" example:"1"`
	FullName    string `json:"fullName" example:"Ananya Sharma"`
	Email       string `json:"email" example:"ananya@student.nitw.ac.in"`
	CollegeName string `json:"collegeName" example:"National Institute of Technology"`
}

// AuthResponse represents a successful registration response
type AuthResponse struct {
	Token TokenResponse          `json:"token"`
	User  RegisteredUserResponse `json:"user"`
}
