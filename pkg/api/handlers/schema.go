package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"densityhq/callisto/pkg/api"
	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/schema"
)

// SchemaHandler serves GET /api/clusters/schema?mode=, returning the field
// descriptors for the requested tier so editors can render forms without
// hardcoding the field table.
type SchemaHandler struct {
	deps Deps
}

// NewSchemaHandler creates the schema endpoint handler.
func NewSchemaHandler(deps Deps) *SchemaHandler {
	return &SchemaHandler{deps: deps}
}

// ServeHTTP implements http.Handler.
func (h *SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := api.WriteSuccess(w, schema.For(mode)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}
