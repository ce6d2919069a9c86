package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"densityhq/callisto/pkg/api"
	"densityhq/callisto/pkg/api/middleware"
	"densityhq/callisto/pkg/api/types"
)

// DependenciesHandler serves POST /api/clusters/dependencies: the
// cross-parameter dependency analysis alone, without structural checks.
// Editors poll it separately so advisory issues can render while the user
// is still filling in required fields.
type DependenciesHandler struct {
	deps Deps
}

// NewDependenciesHandler creates the dependency analysis endpoint handler.
func NewDependenciesHandler(deps Deps) *DependenciesHandler {
	return &DependenciesHandler{deps: deps}
}

// ServeHTTP implements http.Handler.
func (h *DependenciesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = api.WriteErrorCode(w, types.CodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed, use POST", r.Method))
		return
	}

	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	// Dependency rules are mode-independent, but the body shares the
	// validate request shape so clients can reuse their encoder.
	ps, _, err := api.ParseValidateRequest(r, h.deps.DefaultMode)
	if err != nil {
		slog.WarnContext(ctx, "rejected dependency check request",
			"request_id", requestID,
			"error", err,
		)
		if werr := api.WriteError(w, api.HandleError(err)); werr != nil {
			slog.ErrorContext(ctx, "failed to write error response", "error", werr)
		}
		return
	}

	result := h.deps.Validator.ValidateDependencies(ps)

	if h.deps.Metrics != nil {
		h.deps.Metrics.RecordDependencyCheck(result)
	}

	if err := api.WriteSuccess(w, result); err != nil {
		slog.ErrorContext(ctx, "failed to write response",
			"request_id", requestID,
			"error", err,
		)
	}
}
