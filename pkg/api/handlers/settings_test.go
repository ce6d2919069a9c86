package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/settings"
)

func settingsDeps(t *testing.T) Deps {
	t.Helper()

	store, err := settings.NewStore(&settings.StoreConfig{
		Path:        filepath.Join(t.TempDir(), "settings.db"),
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	deps := testDeps()
	deps.Settings = store
	return deps
}

func TestSettingsHandler_GetDefaults(t *testing.T) {
	handler := NewSettingsHandler(settingsDeps(t))

	rec := getPath(t, handler, "/api/settings")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data settings.Settings `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data != settings.Default() {
		t.Errorf("settings = %+v, want defaults %+v", resp.Data, settings.Default())
	}
}

func TestSettingsHandler_PutThenGet(t *testing.T) {
	handler := NewSettingsHandler(settingsDeps(t))

	body := `{"theme": "dark", "defaultMode": "advanced", "debounceMs": 500}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	rec = getPath(t, handler, "/api/settings")

	var resp struct {
		Data settings.Settings `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := settings.Settings{Theme: "dark", DefaultMode: "advanced", DebounceMs: 500}
	if resp.Data != want {
		t.Errorf("settings after PUT = %+v, want %+v", resp.Data, want)
	}
}

func TestSettingsHandler_PutRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown theme", `{"theme": "neon", "defaultMode": "basic", "debounceMs": 0}`},
		{"unknown mode", `{"theme": "dark", "defaultMode": "expert", "debounceMs": 0}`},
		{"negative debounce", `{"theme": "dark", "defaultMode": "basic", "debounceMs": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSettingsHandler(settingsDeps(t))

			req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			resp := decodeError(t, rec)
			if resp.Error.Code != types.CodeValidationError {
				t.Errorf("error code = %q, want %q", resp.Error.Code, types.CodeValidationError)
			}
		})
	}
}

func TestSettingsHandler_DisabledStore(t *testing.T) {
	handler := NewSettingsHandler(testDeps())

	rec := getPath(t, handler, "/api/settings")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
