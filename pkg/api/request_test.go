package api

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"densityhq/callisto/pkg/api/types"
	"densityhq/callisto/pkg/params"
)

// paddedValidateBody builds a well-formed validate request body of exactly
// size bytes, padding with an ignored field.
func paddedValidateBody(t *testing.T, size int) []byte {
	t.Helper()

	prefix := `{"params":{"minClusterSize":10},"pad":"`
	suffix := `"}`
	padLen := size - len(prefix) - len(suffix)
	if padLen < 0 {
		t.Fatalf("size %d too small for padding", size)
	}
	return []byte(prefix + strings.Repeat("x", padLen) + suffix)
}

func TestParseValidateRequest_BodyAtSizeLimit(t *testing.T) {
	body := paddedValidateBody(t, MaxRequestBodySize)

	r := httptest.NewRequest("POST", "/api/clusters/validate", bytes.NewReader(body))
	ps, mode, err := ParseValidateRequest(r, params.ModeBasic)
	if err != nil {
		t.Fatalf("ParseValidateRequest() error = %v, want nil for body at limit", err)
	}
	if mode != params.ModeBasic {
		t.Errorf("mode = %q, want %q", mode, params.ModeBasic)
	}
	if ps.MinClusterSize == nil || *ps.MinClusterSize != 10 {
		t.Errorf("MinClusterSize = %v, want 10", ps.MinClusterSize)
	}
}

func TestParseValidateRequest_BodyOverSizeLimit(t *testing.T) {
	body := paddedValidateBody(t, MaxRequestBodySize+1)

	r := httptest.NewRequest("POST", "/api/clusters/validate", bytes.NewReader(body))
	_, _, err := ParseValidateRequest(r, params.ModeBasic)
	if err == nil {
		t.Fatal("ParseValidateRequest() = nil, want error for oversized body")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.Code != types.CodeRequestTooLarge {
		t.Errorf("code = %q, want %q", reqErr.Code, types.CodeRequestTooLarge)
	}
}

func TestParseValidateRequest_ModeFromBody(t *testing.T) {
	body := []byte(`{"params":{"minClusterSize":10},"mode":"advanced"}`)

	r := httptest.NewRequest("POST", "/api/clusters/validate", bytes.NewReader(body))
	_, mode, err := ParseValidateRequest(r, params.ModeBasic)
	if err != nil {
		t.Fatalf("ParseValidateRequest() error = %v", err)
	}
	if mode != params.ModeAdvanced {
		t.Errorf("mode = %q, want %q", mode, params.ModeAdvanced)
	}
}
