package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"densityhq/callisto/pkg/api"
	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/settings"
)

// SettingsHandler serves /api/settings: GET returns the persisted editor
// preferences, PUT replaces them.
type SettingsHandler struct {
	deps Deps
}

// NewSettingsHandler creates the settings endpoint handler.
func NewSettingsHandler(deps Deps) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

// ServeHTTP implements http.Handler.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.deps.Settings == nil {
		_ = api.WriteErrorCode(w, types.CodeNotFound, "settings persistence is disabled")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handlePut(w, r)
	default:
		_ = api.WriteErrorCode(w, types.CodeMethodNotAllowed,
			fmt.Sprintf("method %s not allowed, use GET or PUT", r.Method))
	}
}

func (h *SettingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := h.deps.Settings.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load settings", "error", err)
		_ = api.WriteErrorCode(w, types.CodeInternalError, "failed to load settings")
		return
	}

	if err := api.WriteSuccess(w, current); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

func (h *SettingsHandler) handlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var incoming settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		_ = api.WriteErrorCode(w, types.CodeInvalidJSON,
			fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	if err := validateSettings(incoming); err != nil {
		_ = api.WriteErrorCode(w, types.CodeValidationError, err.Error())
		return
	}

	if err := h.deps.Settings.Save(ctx, incoming); err != nil {
		slog.ErrorContext(ctx, "failed to save settings", "error", err)
		_ = api.WriteErrorCode(w, types.CodeInternalError, "failed to save settings")
		return
	}

	if err := api.WriteSuccess(w, incoming); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

func validateSettings(s settings.Settings) error {
	switch s.Theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("unknown theme %q (must be one of: light, dark, system)", s.Theme)
	}

	if !params.Mode(s.DefaultMode).Valid() {
		return fmt.Errorf("unknown mode %q (must be one of: basic, advanced, super-advanced)", s.DefaultMode)
	}

	if s.DebounceMs < 0 {
		return fmt.Errorf("debounceMs must not be negative, got %d", s.DebounceMs)
	}

	return nil
}
