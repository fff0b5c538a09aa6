package model

// ErrorResponse is the stable error body for every failure path.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse wraps a message in the error envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// InsertResponse reports the id of a newly inserted document.
type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResponse mirrors the driver's update counts.
type UpdateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// CreateUserResponse is the user-creation result. On a duplicate email
// InsertedID stays null and Message carries the sentinel the frontend
// matches on.
type CreateUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}
