package monitoring_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ndewijer/TradeLog-Backend/internal/monitoring"
)

func TestMetrics_Counters(t *testing.T) {
	m := monitoring.New()

	m.GroupDissolved()
	m.GroupDissolved()
	m.StrategyCreated()
	m.ObserveRequest(http.MethodGet, "/v1/trades", http.StatusOK, 15*time.Millisecond)

	expected := `
# HELP tradelog_groups_dissolved_total Groups removed because they dropped below two members
# TYPE tradelog_groups_dissolved_total counter
tradelog_groups_dissolved_total 2
# HELP tradelog_strategies_created_total Strategies created atomically with their trades
# TYPE tradelog_strategies_created_total counter
tradelog_strategies_created_total 1
# HELP tradelog_http_requests_total Total number of HTTP requests handled
# TYPE tradelog_http_requests_total counter
tradelog_http_requests_total{method="GET",route="/v1/trades",status="200"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"tradelog_groups_dissolved_total",
		"tradelog_strategies_created_total",
		"tradelog_http_requests_total",
	)
	if err != nil {
		t.Error(err)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := monitoring.New()
	m.StrategyCreated()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"tradelog_strategies_created_total 1", "go_goroutines"} {
		if !strings.Contains(body, name) {
			t.Errorf("Expected exposition to contain %q", name)
		}
	}
}
