package common

// APIResponse is the envelope for every contact API response.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Define type for error codes to enforce consistency. The codes are used for
// logging and classification; the wire format carries only success + message.
type ErrorCode string

// Standard error codes
const (
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrCodeConfiguration  ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeDelivery       ErrorCode = "DELIVERY_ERROR"
	ErrCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// NewSuccessResponse creates a successful API response
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates an error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}
