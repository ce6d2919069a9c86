package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"densityhq/callisto/pkg/api"
	"densityhq/callisto/pkg/api/middleware"
	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/params"
)

// ValidateHandler serves /api/clusters/validate.
//
// POST runs a full validation pass over the submitted parameter set and
// returns the result. GET describes the endpoint so editors can discover
// the accepted modes and the realtime debounce window.
type ValidateHandler struct {
	deps Deps
}

// NewValidateHandler creates the validation endpoint handler.
func NewValidateHandler(deps Deps) *ValidateHandler {
	return &ValidateHandler{deps: deps}
}

// ServeHTTP implements http.Handler.
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleValidate(w, r)
	case http.MethodGet:
		h.handleDescribe(w, r)
	default:
		_ = api.WriteErrorCode(w, types.CodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed, use GET or POST", r.Method))
	}
}

func (h *ValidateHandler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	startTime := time.Now()

	ps, mode, err := api.ParseValidateRequest(r, h.deps.DefaultMode)
	if err != nil {
		slog.WarnContext(ctx, "rejected validation request",
			"request_id", requestID,
			"error", err,
		)
		if werr := api.WriteError(w, api.HandleError(err)); werr != nil {
			slog.ErrorContext(ctx, "failed to write error response", "error", werr)
		}
		return
	}

	// A panicking validator must still produce an audit record and a 500
	// in the standard envelope.
	defer func() {
		if rec := recover(); rec != nil {
			duration := time.Since(startTime)
			slog.ErrorContext(ctx, "validation pass panicked",
				"request_id", requestID,
				"mode", string(mode),
				"panic", rec,
			)
			if h.deps.Recorder != nil {
				h.deps.Recorder.RecordFailure(requestID, "api", mode, ps, duration)
			}
			if h.deps.Metrics != nil {
				h.deps.Metrics.RecordValidationError(string(mode), duration)
			}
			_ = api.WriteErrorCode(w, types.CodeInternalError,
				"unexpected validation error")
		}
	}()

	result := h.deps.Validator.Validate(ps, mode)
	duration := time.Since(startTime)

	if h.deps.Recorder != nil {
		h.deps.Recorder.RecordValidation(requestID, "api", mode, ps, result, duration)
	}
	if h.deps.Metrics != nil {
		h.deps.Metrics.RecordValidation(string(mode), result, duration)
	}

	slog.InfoContext(ctx, "validation completed",
		"request_id", requestID,
		"mode", string(mode),
		"valid", result.Valid,
		"error_fields", len(result.Errors),
		"duration_ms", duration.Milliseconds(),
	)

	if err := api.WriteSuccess(w, result); err != nil {
		slog.ErrorContext(ctx, "failed to write response",
			"request_id", requestID,
			"error", err,
		)
	}
}

func (h *ValidateHandler) handleDescribe(w http.ResponseWriter, r *http.Request) {
	modes := params.Modes()
	literals := make([]string, len(modes))
	for i, m := range modes {
		literals[i] = string(m)
	}

	capability := types.CapabilityResponse{
		Description: "Validates HDBSCAN clustering parameters: structural checks per tier plus cross-parameter dependency analysis.",
		Modes:       literals,
		DefaultMode: string(h.deps.DefaultMode),
		DebounceMs:  h.deps.Debounce.Milliseconds(),
		Endpoints: []string{
			"POST /api/clusters/validate",
			"POST /api/clusters/dependencies",
			"GET /api/clusters/schema",
			"GET /api/clusters/defaults",
		},
	}

	if err := api.WriteSuccess(w, capability); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}
