package models

import "time"

const (
	// StatusError is the Status value of every error body.
	StatusError = "Error"
	// StatusOK is the Status value reported by a healthy store.
	StatusOK = "ok"
)

// ErrorResponse is the JSON body returned by the Message Store on failure.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse builds an [ErrorResponse] with Status set to [StatusError].
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Users    int       `json:"users"`
	Messages int       `json:"messages"`
}
