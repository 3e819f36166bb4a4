package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type readyFlag bool

func (r readyFlag) Ready() bool { return bool(r) }

func TestReadiness_MemoryOnly(t *testing.T) {
	e := newTestEcho()
	h := NewReadinessHandler(readyFlag(true), nil, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp.Dependencies["mongodb"]; ok {
		t.Fatal("mongodb should not be probed when not configured")
	}
	if resp.Dependencies["session"].Status != "ok" {
		t.Fatalf("unexpected session status: %+v", resp.Dependencies)
	}
}

func TestReadiness_SessionNotRestored(t *testing.T) {
	e := newTestEcho()
	h := NewReadinessHandler(readyFlag(false), nil, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestLiveness(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
