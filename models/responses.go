package models

import "time"

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// VerifyResponse is returned for a valid token.
type VerifyResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}

// ProcessResponse carries the generated artifacts of a new session.
type ProcessResponse struct {
	SessionID string `json:"sessionId"`
	Results
	InputType InputType `json:"inputType"`
	WordCount int       `json:"wordCount"`
	FileName  string    `json:"fileName,omitempty"`
}

// HistoryResponse lists the most recent sessions of a user.
type HistoryResponse struct {
	Sessions []StudySession `json:"sessions"`
	Count    int            `json:"count"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
