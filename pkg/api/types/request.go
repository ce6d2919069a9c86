package types

import "densityhq/callisto/pkg/params"

// ValidateRequest is the body of POST /api/clusters/validate and
// POST /api/clusters/dependencies.
type ValidateRequest struct {
	// Params is the parameter set to validate. Required.
	Params *params.ParameterSet `json:"params"`

	// Mode selects the validation tier. Empty means the server default.
	Mode string `json:"mode,omitempty"`
}

// CapabilityResponse describes the validation endpoint to GET callers.
type CapabilityResponse struct {
	// Description summarizes what the endpoint does.
	Description string `json:"description"`

	// Modes lists the accepted mode literals.
	Modes []string `json:"modes"`

	// DefaultMode is the mode used when the request omits one.
	DefaultMode string `json:"defaultMode"`

	// DebounceMs is the realtime debounce window advertised to editors.
	DebounceMs int64 `json:"debounceMs"`

	// Endpoints lists the related API paths.
	Endpoints []string `json:"endpoints"`
}
