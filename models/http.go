package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest is the body of POST /api/auth/verify.
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// ProcessRequest is the body of POST /api/study/process.
type ProcessRequest struct {
	Text     string    `json:"text" validate:"studytext"`
	Features []Feature `json:"features" validate:"required,min=1,dive,oneof=summary quiz flashcards keyPoints"`
}
