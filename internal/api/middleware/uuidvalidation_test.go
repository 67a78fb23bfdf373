package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/TradeLog-Backend/internal/api/middleware"
	"github.com/ndewijer/TradeLog-Backend/internal/api/response"
	"github.com/ndewijer/TradeLog-Backend/internal/testutil"
)

func TestValidateUUIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		uuid       string
		wantCalled bool
		wantStatus int
		wantError  string
	}{
		{"passes through valid UUID", "550e8400-e29b-41d4-a716-446655440000", true, http.StatusOK, ""},
		{"returns 400 for invalid UUID", "invalid-id", false, http.StatusBadRequest, "invalid UUID format"},
		{"returns 400 for uppercase UUID", "550E8400-E29B-41D4-A716-446655440000", false, http.StatusBadRequest, "invalid UUID format"},
		{"returns 400 for braced UUID", "{550e8400-e29b-41d4-a716-446655440000}", false, http.StatusBadRequest, "invalid UUID format"},
		{"returns 400 for empty UUID", "", false, http.StatusBadRequest, "valid UUID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			mw := middleware.ValidateUUIDMiddleware(next)

			req := testutil.NewRequestWithURLParams(http.MethodGet, "/v1/trades/x", map[string]string{"uuid": tt.uuid})
			w := httptest.NewRecorder()
			mw.ServeHTTP(w, req)

			if handlerCalled != tt.wantCalled {
				t.Errorf("Expected handler called = %v", tt.wantCalled)
			}
			if w.Code != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantError == "" {
				return
			}

			var body response.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, body.Error)
			}
		})
	}
}
