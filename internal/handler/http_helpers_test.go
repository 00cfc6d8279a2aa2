package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creatoros/internal/domain"
	apperrors "creatoros/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteError_EscapesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, `bad "quote"`)

	if strings.TrimSpace(rr.Body.String()) != `{"error":"bad \"quote\""}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError("bio", "bio is required"), http.StatusBadRequest},
		{"limit reached", fmt.Errorf("dm: %w", domain.ErrUsageLimitReached), http.StatusPaymentRequired},
		{"usage unavailable", fmt.Errorf("%w: db down", domain.ErrUsageUnavailable), http.StatusServiceUnavailable},
		{"invalid action", domain.ErrInvalidActionKind, http.StatusBadRequest},
		{"invalid history", domain.ErrInvalidHistoryKind, http.StatusBadRequest},
		{"media kit missing", domain.ErrMediaKitNotFound, http.StatusNotFound},
		{"profile missing", domain.ErrUserNotFound, http.StatusNotFound},
		{"app error", apperrors.NewUnauthorizedError("nope"), http.StatusUnauthorized},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAppError(tt.err)
			if got.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, got.StatusCode)
			}
		})
	}
}

func TestToAppError_HidesInternalMessage(t *testing.T) {
	got := toAppError(errors.New("postgrest: relation does not exist"))
	if got.Message != "Internal server error" {
		t.Fatalf("unexpected message: %s", got.Message)
	}
}
