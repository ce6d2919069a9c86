package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/validation"
)

func testDeps() Deps {
	return Deps{
		Validator:   validation.NewValidator(),
		DefaultMode: params.ModeBasic,
		Debounce:    300 * time.Millisecond,
	}
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.ErrorResponse {
	t.Helper()

	var resp types.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestValidateHandler_ValidParams(t *testing.T) {
	handler := NewValidateHandler(testDeps())

	rec := postJSON(t, handler, "/api/clusters/validate",
		`{"params": {"minClusterSize": 10, "minSamples": 5}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    validation.Result `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false for valid request")
	}
	if !resp.Data.Valid {
		t.Errorf("isValid = false, errors = %v", resp.Data.Errors)
	}
}

func TestValidateHandler_InvalidParams(t *testing.T) {
	handler := NewValidateHandler(testDeps())

	rec := postJSON(t, handler, "/api/clusters/validate",
		`{"params": {"minClusterSize": 1}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data validation.Result `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Valid {
		t.Error("isValid = true for out-of-range minClusterSize")
	}
	if len(resp.Data.Errors["minClusterSize"]) == 0 {
		t.Errorf("no errors for minClusterSize, got %v", resp.Data.Errors)
	}
}

func TestValidateHandler_ExplicitMode(t *testing.T) {
	handler := NewValidateHandler(testDeps())

	// metric is only checked in the advanced tier.
	rec := postJSON(t, handler, "/api/clusters/validate",
		`{"params": {"minClusterSize": 10, "metric": "nonsense"}, "mode": "advanced"}`)

	var resp struct {
		Data validation.Result `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Valid {
		t.Error("isValid = true for invalid metric in advanced mode")
	}
	if len(resp.Data.Errors["metric"]) == 0 {
		t.Errorf("no errors for metric, got %v", resp.Data.Errors)
	}
}

func TestValidateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "malformed json",
			body:     `{"params": {`,
			wantCode: types.CodeInvalidJSON,
		},
		{
			name:     "wrong type for typed field",
			body:     `{"params": {"minClusterSize": "ten"}}`,
			wantCode: types.CodeInvalidJSON,
		},
		{
			name:     "missing params",
			body:     `{"mode": "basic"}`,
			wantCode: types.CodeValidationError,
		},
		{
			name:     "unknown mode literal",
			body:     `{"params": {"minClusterSize": 10}, "mode": "expert"}`,
			wantCode: types.CodeValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewValidateHandler(testDeps())

			rec := postJSON(t, handler, "/api/clusters/validate", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			resp := decodeError(t, rec)
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateHandler_Describe(t *testing.T) {
	handler := NewValidateHandler(testDeps())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clusters/validate", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data types.CapabilityResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Modes) != 3 {
		t.Errorf("modes = %v, want 3 entries", resp.Data.Modes)
	}
	if resp.Data.DefaultMode != "basic" {
		t.Errorf("defaultMode = %q, want \"basic\"", resp.Data.DefaultMode)
	}
	if resp.Data.DebounceMs != 300 {
		t.Errorf("debounceMs = %d, want 300", resp.Data.DebounceMs)
	}
}

func TestValidateHandler_MethodNotAllowed(t *testing.T) {
	handler := NewValidateHandler(testDeps())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/clusters/validate", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != types.CodeMethodNotAllowed {
		t.Errorf("error code = %q, want %q", resp.Error.Code, types.CodeMethodNotAllowed)
	}
}
