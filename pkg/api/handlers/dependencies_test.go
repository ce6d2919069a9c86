package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/validation"
)

func TestDependenciesHandler_CleanParams(t *testing.T) {
	handler := NewDependenciesHandler(testDeps())

	rec := postJSON(t, handler, "/api/clusters/dependencies",
		`{"params": {"minClusterSize": 10, "minSamples": 5}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data validation.DependencyResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.HasIssues {
		t.Errorf("hasIssues = true for clean params: %+v", resp.Data)
	}
}

func TestDependenciesHandler_SampleOrderingError(t *testing.T) {
	handler := NewDependenciesHandler(testDeps())

	rec := postJSON(t, handler, "/api/clusters/dependencies",
		`{"params": {"minClusterSize": 5, "minSamples": 50}}`)

	var resp struct {
		Data validation.DependencyResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.HasIssues {
		t.Error("hasIssues = false for minSamples > minClusterSize")
	}
	if len(resp.Data.Errors) == 0 {
		t.Error("no dependency errors for minSamples > minClusterSize")
	}
}

func TestDependenciesHandler_BadBody(t *testing.T) {
	handler := NewDependenciesHandler(testDeps())

	rec := postJSON(t, handler, "/api/clusters/dependencies", `{"mode": "basic"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != types.CodeValidationError {
		t.Errorf("error code = %q, want %q", resp.Error.Code, types.CodeValidationError)
	}
}

func TestDependenciesHandler_GetNotAllowed(t *testing.T) {
	handler := NewDependenciesHandler(testDeps())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clusters/dependencies", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
