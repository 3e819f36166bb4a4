package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campulse/campulse-api/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := map[string]struct {
		err       error
		wantCode  int
		wantLevel string
	}{
		"not found":         {err: domain.ErrTaskNotFound, wantCode: http.StatusNotFound},
		"no session":        {err: domain.ErrNoSession, wantCode: http.StatusUnauthorized},
		"http error":        {err: echo.NewHTTPError(http.StatusTeapot, "short and stout"), wantCode: http.StatusTeapot},
		"client went away":  {err: fmt.Errorf("list tasks: %w", context.Canceled), wantCode: statusClientClosedRequest, wantLevel: "debug"},
		"deadline exceeded": {err: fmt.Errorf("find tutors: %w", context.DeadlineExceeded), wantCode: http.StatusServiceUnavailable, wantLevel: "warn"},
		"unexpected":        {err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantLevel: "error"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var logs bytes.Buffer
			log := zerolog.New(&logs).Level(zerolog.DebugLevel)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/tasks", nil), rec)

			NewHTTPErrorHandler(log)(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"error":`) {
				t.Fatalf("missing error envelope: %s", rec.Body.String())
			}
			if tc.wantLevel == "" {
				if logs.Len() != 0 {
					t.Fatalf("expected no log, got %s", logs.String())
				}
				return
			}
			if !strings.Contains(logs.String(), `"level":"`+tc.wantLevel+`"`) {
				t.Fatalf("expected %s log, got %s", tc.wantLevel, logs.String())
			}
		})
	}
}
