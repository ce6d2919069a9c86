package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"densityhq/callisto/pkg/api/types"
)

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// WriteSuccess writes data wrapped in the success envelope with status 200.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, types.NewSuccessResponse(data))
}

// WriteError writes an error envelope with the status code derived from its
// error code.
func WriteError(w http.ResponseWriter, errResp *types.ErrorResponse) error {
	return WriteJSON(w, errResp.Error.HTTPStatusCode(), errResp)
}

// WriteErrorCode writes an error envelope built from code and message.
func WriteErrorCode(w http.ResponseWriter, code, message string) error {
	return WriteError(w, types.NewErrorResponse(code, message))
}
