package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/schema"
)

func getPath(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSchemaHandler_TierSizes(t *testing.T) {
	tests := []struct {
		mode       string
		wantFields int
	}{
		{"basic", 2},
		{"advanced", 5},
		{"super-advanced", 14},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			handler := NewSchemaHandler(testDeps())

			rec := getPath(t, handler, "/api/clusters/schema?mode="+tt.mode)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var resp struct {
				Data schema.Schema `json:"data"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(resp.Data.Fields) != tt.wantFields {
				t.Errorf("fields = %d, want %d", len(resp.Data.Fields), tt.wantFields)
			}
		})
	}
}

func TestSchemaHandler_DefaultModeWhenOmitted(t *testing.T) {
	handler := NewSchemaHandler(testDeps())

	rec := getPath(t, handler, "/api/clusters/schema")

	var resp struct {
		Data schema.Schema `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Mode != params.ModeBasic {
		t.Errorf("mode = %q, want basic", resp.Data.Mode)
	}
}

func TestSchemaHandler_UnknownMode(t *testing.T) {
	handler := NewSchemaHandler(testDeps())

	rec := getPath(t, handler, "/api/clusters/schema?mode=expert")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != types.CodeValidationError {
		t.Errorf("error code = %q, want %q", resp.Error.Code, types.CodeValidationError)
	}
}

func TestDefaultsHandler_FillsTierDefaults(t *testing.T) {
	handler := NewDefaultsHandler(testDeps())

	rec := getPath(t, handler, "/api/clusters/defaults?mode=advanced")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data params.ParameterSet `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Metric == nil || *resp.Data.Metric != params.MetricEuclidean {
		t.Errorf("metric default = %v, want euclidean", resp.Data.Metric)
	}
	if resp.Data.Alpha == nil || *resp.Data.Alpha != 1.0 {
		t.Errorf("alpha default = %v, want 1.0", resp.Data.Alpha)
	}
	// minClusterSize has no schema default: required fields stay unset.
	if resp.Data.MinClusterSize != nil {
		t.Errorf("minClusterSize = %v, want unset", *resp.Data.MinClusterSize)
	}
}
