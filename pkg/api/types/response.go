package types

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	// Success is always true for this envelope.
	Success bool `json:"success"`

	// Data holds the operation-specific payload.
	Data any `json:"data"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	// Success is always false for this envelope.
	Success bool `json:"success"`

	// Error contains the error details.
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains machine- and human-readable error information.
type ErrorDetail struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`
}

// Error code constants.
const (
	// CodeInvalidJSON indicates the request body is not valid JSON or does
	// not match the expected shape.
	CodeInvalidJSON = "INVALID_JSON"

	// CodeValidationError indicates the request was well-formed JSON but
	// semantically unusable: missing params, unknown mode literal.
	CodeValidationError = "VALIDATION_ERROR"

	// CodeMethodNotAllowed indicates the HTTP method is not supported on
	// the requested path.
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "NOT_FOUND"

	// CodeRequestTooLarge indicates the request payload exceeds the limit.
	CodeRequestTooLarge = "REQUEST_TOO_LARGE"

	// CodeRequestTimeout indicates request processing exceeded the
	// configured timeout.
	CodeRequestTimeout = "REQUEST_TIMEOUT"

	// CodeInternalError indicates an unexpected server-side failure.
	CodeInternalError = "INTERNAL_ERROR"
)

// NewSuccessResponse wraps data in the success envelope.
func NewSuccessResponse(data any) *SuccessResponse {
	return &SuccessResponse{Success: true, Data: data}
}

// NewErrorResponse creates an error envelope with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   ErrorDetail{Code: code, Message: message},
	}
}

// HTTPStatusCode returns the HTTP status code corresponding to the error code.
func (e *ErrorDetail) HTTPStatusCode() int {
	switch e.Code {
	case CodeInvalidJSON, CodeValidationError:
		return 400
	case CodeNotFound:
		return 404
	case CodeMethodNotAllowed:
		return 405
	case CodeRequestTooLarge:
		return 413
	case CodeRequestTimeout:
		return 504
	default:
		return 500
	}
}
