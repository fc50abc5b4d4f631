package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpInvalidRequestError    = "invalid_request"
	HttpFavouriteNotFoundError = "favourite_not_found"
	HttpPayloadTooLargeError   = "payload_too_large"
)

// ErrorResponse is the error response body for every favourite API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"
