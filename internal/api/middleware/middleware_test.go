package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/TradeLog-Backend/internal/api/middleware"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observation{method, route, status})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Get("/v1/trades", func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/trades", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "req-123")
	r.ServeHTTP(httptest.NewRecorder(), req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var handlerLine, accessLine map[string]any
	if err := json.Unmarshal(lines[0], &handlerLine); err != nil {
		t.Fatalf("Failed to decode handler log: %v", err)
	}
	if err := json.Unmarshal(lines[1], &accessLine); err != nil {
		t.Fatalf("Failed to decode access log: %v", err)
	}

	if handlerLine["request_id"] != "req-123" {
		t.Errorf("Expected handler log to carry request id, got %v", handlerLine)
	}
	if accessLine["status"] != float64(http.StatusTeapot) || accessLine["path"] != "/v1/trades" || accessLine["method"] != "GET" {
		t.Errorf("Unexpected access log: %v", accessLine)
	}
}

func TestMetrics(t *testing.T) {
	observer := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(middleware.Metrics(observer))
	r.Get("/v1/trades/{uuid}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/trades/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if len(observer.seen) != 2 {
		t.Fatalf("Expected 2 observations, got %d", len(observer.seen))
	}
	if got := observer.seen[0]; got.route != "/v1/trades/{uuid}" || got.status != http.StatusNotFound {
		t.Errorf("Expected route pattern label, got %+v", got)
	}
	if got := observer.seen[1]; got.route != "unmatched" {
		t.Errorf("Expected unmatched route, got %+v", got)
	}
}

func TestNewCORS(t *testing.T) {
	handler := middleware.NewCORS([]string{"http://localhost:5173"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight allows PATCH for a known origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/groups/x", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Expected origin echoed, got %q", got)
		}
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/trades", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Expected no allow-origin header, got %q", got)
		}
	})
}
