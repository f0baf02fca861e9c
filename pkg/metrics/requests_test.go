package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRequestMetrics(reg)

	m.Observe("GET", "/api/v1/profitGrids", 200, 3*time.Millisecond)
	m.Observe("GET", "/api/v1/profitGrids", 200, 4*time.Millisecond)
	m.Observe("POST", "/api/v1/profitGrids/calculate", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.total.WithLabelValues("GET", "/api/v1/profitGrids", "200")); got != 2 {
		t.Fatalf("total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.total.WithLabelValues("POST", "/api/v1/profitGrids/calculate", "404")); got != 1 {
		t.Fatalf("total = %v, want 1", got)
	}
}

func TestRequestMetricsInflight(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRequestMetrics(reg)

	m.IncInflight()
	m.IncInflight()
	m.DecInflight()

	if got := testutil.ToFloat64(m.inflight); got != 1 {
		t.Fatalf("inflight = %v, want 1", got)
	}
}

func TestRequestMetricsNilSafe(t *testing.T) {
	var m *RequestMetrics
	m.Observe("GET", "/", 200, time.Millisecond)
	m.IncInflight()
	m.DecInflight()

	m = NewRequestMetrics(nil)
	m.Observe("", "", 500, time.Millisecond)
}
