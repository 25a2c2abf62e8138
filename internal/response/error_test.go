package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/retail-backend/internal/errs"
	"github.com/GregMSThompson/retail-backend/pkg/logger"
)

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	h := New(slog.New(logger.NewTestHandler(slog.LevelInfo)))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	h.HandleError(w, r, err)

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return w, body
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errs.NewNotFoundError("Layout not found"), http.StatusNotFound, "not_found"},
		{"unauthorized", errs.NewUnauthorizedError("no session"), http.StatusUnauthorized, "unauthorized"},
		{"validation", errs.NewValidationError("limit must not be negative"), http.StatusBadRequest, "invalid_input"},
		{"transient upstream", errs.NewExternalServiceError("catalog", "timeout", true), http.StatusServiceUnavailable, "service_unavailable"},
		{"permanent upstream", errs.NewExternalServiceError("catalog", "bad gateway", false), http.StatusBadGateway, "service_unavailable"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, body := handleErr(t, tc.err)
			if w.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if body.Code != tc.wantCode {
				t.Errorf("expected code %q, got %q", tc.wantCode, body.Code)
			}
		})
	}
}

func TestHandleError_UpstreamMessageNotLeaked(t *testing.T) {
	_, body := handleErr(t, errs.NewExternalServiceError("catalog", "dial tcp 10.0.0.4: refused", true))
	if body.Message != "Service temporarily unavailable" {
		t.Errorf("expected the generic message, got %q", body.Message)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	h := New(slog.New(logger.NewTestHandler(slog.LevelInfo)))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	h.WriteSuccess(w, r, http.StatusCreated, map[string]string{"id": "x"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var env SuccessEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.Success || env.Data == nil {
		t.Errorf("unexpected envelope %+v", env)
	}
}
