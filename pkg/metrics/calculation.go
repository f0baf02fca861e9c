package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CalculationMetrics records the outcome of profit grid calculations.
type CalculationMetrics struct {
	duration   *prometheus.HistogramVec
	resolved   *prometheus.CounterVec
	unresolved prometheus.Counter
	corrupt    prometheus.Counter
}

// NewCalculationMetrics registers the calculation metrics on the provided registerer.
func NewCalculationMetrics(reg prometheus.Registerer) *CalculationMetrics {
	if reg == nil {
		return &CalculationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profit_grid_calculation_duration_seconds",
		Help:    "Duration of profit grid calculations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"currency"})
	resolved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "profit_grid_calculations_resolved",
		Help: "Calculations that resolved to a tier.",
	}, []string{"currency"})
	unresolved := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "profit_grid_calculations_unresolved",
		Help: "Calculations whose amount fell outside every active tier.",
	})
	corrupt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "profit_grid_configuration_conflicts",
		Help: "Calculations that detected overlapping active tiers.",
	})
	reg.MustRegister(duration, resolved, unresolved, corrupt)
	return &CalculationMetrics{
		duration:   duration,
		resolved:   resolved,
		unresolved: unresolved,
		corrupt:    corrupt,
	}
}

// ObserveDuration records how long a calculation took for the given currency.
func (c *CalculationMetrics) ObserveDuration(currency string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(currency)).Observe(duration.Seconds())
}

// IncResolved increments the resolved counter for the given currency.
func (c *CalculationMetrics) IncResolved(currency string) {
	if c == nil || c.resolved == nil {
		return
	}
	c.resolved.WithLabelValues(normalizeLabel(currency)).Inc()
}

// IncUnresolved increments the unresolved counter.
func (c *CalculationMetrics) IncUnresolved() {
	if c == nil || c.unresolved == nil {
		return
	}
	c.unresolved.Inc()
}

// IncConfigurationConflict increments the overlapping-tier counter.
func (c *CalculationMetrics) IncConfigurationConflict() {
	if c == nil || c.corrupt == nil {
		return
	}
	c.corrupt.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
