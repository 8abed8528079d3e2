package dto

// MessageResponse represents a standard success response body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the uniform error response body
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
