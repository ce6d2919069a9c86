package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/params"
)

// MaxRequestBodySize is the maximum allowed request body size (1MB).
// Parameter sets are small; anything near this limit is malformed.
const MaxRequestBodySize = 1 * 1024 * 1024

// ParseValidateRequest parses and checks a validation request body.
//
// Decode failures (malformed JSON, a value of the wrong JSON type for a
// typed field) are INVALID_JSON. A well-formed body with no params object
// or an unknown mode literal is VALIDATION_ERROR. The returned mode is the
// parsed tier, with defaultMode applied when the body omits one.
func ParseValidateRequest(r *http.Request, defaultMode params.Mode) (*params.ParameterSet, params.Mode, error) {
	// Read one byte past the limit so a body of exactly MaxRequestBodySize
	// is distinguishable from a truncated one.
	limitedReader := io.LimitReader(r.Body, MaxRequestBodySize+1)

	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read request body: %w", err)
	}

	if len(body) > MaxRequestBodySize {
		return nil, "", &RequestError{
			Message: fmt.Sprintf("request body exceeds maximum size of %d bytes", MaxRequestBodySize),
			Code:    types.CodeRequestTooLarge,
		}
	}

	var req types.ValidateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, "", &RequestError{
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Code:    types.CodeInvalidJSON,
		}
	}

	if req.Params == nil {
		return nil, "", &RequestError{
			Message: "params is required",
			Code:    types.CodeValidationError,
		}
	}

	mode := defaultMode
	if req.Mode != "" {
		parsed, err := params.ParseMode(req.Mode)
		if err != nil {
			return nil, "", &RequestError{
				Message: err.Error(),
				Code:    types.CodeValidationError,
			}
		}
		mode = parsed
	}

	return req.Params, mode, nil
}

// ParseModeQuery reads an optional ?mode= query parameter, falling back to
// defaultMode when absent.
func ParseModeQuery(r *http.Request, defaultMode params.Mode) (params.Mode, error) {
	raw := r.URL.Query().Get("mode")
	if raw == "" {
		return defaultMode, nil
	}

	mode, err := params.ParseMode(raw)
	if err != nil {
		return "", &RequestError{
			Message: err.Error(),
			Code:    types.CodeValidationError,
		}
	}
	return mode, nil
}
