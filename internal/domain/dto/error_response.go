package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by all endpoints.
//
// Fields:
//   - Message: human-readable description of what went wrong.
//   - ErrorDetails: underlying error text, when one exists.
//   - Timestamp: moment the error response was built (UTC).
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"symbol is required"`
	ErrorDetails string    `json:"error,omitempty" example:"upstream returned 503"`
	Timestamp    time.Time `json:"timestamp" example:"2024-01-25T10:30:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's error list (c.Error) and middleware.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
