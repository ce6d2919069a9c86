package api

import (
	"fmt"

	"densityhq/callisto/pkg/api/types"
)

// RequestError represents a client-side request failure with a stable
// error code.
type RequestError struct {
	// Message is the human-readable description.
	Message string

	// Code is the machine-readable error code from pkg/api/types.
	Code string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HandleError converts an error to the envelope written to clients.
// RequestError values carry their own code; anything else is reported as an
// internal error without leaking details.
func HandleError(err error) *types.ErrorResponse {
	if reqErr, ok := err.(*RequestError); ok {
		return types.NewErrorResponse(reqErr.Code, reqErr.Message)
	}
	return types.NewErrorResponse(types.CodeInternalError,
		"An internal error occurred. Please try again later.")
}
