package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"densityhq/callisto/pkg/api"
	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/schema"
)

// DefaultsHandler serves GET /api/clusters/defaults?mode=, returning a
// parameter set with every defaultable field of the tier filled in.
type DefaultsHandler struct {
	deps Deps
}

// NewDefaultsHandler creates the defaults endpoint handler.
func NewDefaultsHandler(deps Deps) *DefaultsHandler {
	return &DefaultsHandler{deps: deps}
}

// ServeHTTP implements http.Handler.
func (h *DefaultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		_ = api.WriteErrorCode(w, types.CodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed, use GET", r.Method))
		return
	}

	mode, err := api.ParseModeQuery(r, h.deps.DefaultMode)
	if err != nil {
		_ = api.WriteError(w, api.HandleError(err))
		return
	}

	if err := api.WriteSuccess(w, schema.Defaults(mode)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}
