package logger

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsNamespace prefixes every exported metric name.
const metricsNamespace = "schlog"

// Metrics counts emitted lines per level. It implements Hook.
type Metrics struct {
	// all metrics fields must be exported
	// to be able to return them by Collectors()
	// using reflection
	ErrorCount  prometheus.Counter
	WarnCount   prometheus.Counter
	InfoCount   prometheus.Counter
	DebugCount  prometheus.Counter
	CustomCount prometheus.Counter
}

// NewMetrics returns a Metrics hook with fresh counters.
func NewMetrics() *Metrics {
	const subsystem = "log"

	return &Metrics{
		ErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "error_count",
			Help:      "Number ERROR log messages.",
		}),
		WarnCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "warn_count",
			Help:      "Number WARN log messages.",
		}),
		InfoCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "info_count",
			Help:      "Number INFO log messages.",
		}),
		DebugCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "debug_count",
			Help:      "Number DEBUG log messages.",
		}),
		CustomCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "custom_count",
			Help:      "Number of log messages at custom levels.",
		}),
	}
}

// Fire implements Hook interface.
func (m *Metrics) Fire(level *Level) error {
	switch level {
	case ErrorLevel:
		m.ErrorCount.Inc()
	case WarnLevel:
		m.WarnCount.Inc()
	case InfoLevel:
		m.InfoCount.Inc()
	case DebugLevel:
		m.DebugCount.Inc()
	default:
		m.CustomCount.Inc()
	}
	return nil
}

// Collectors returns the counters for registration with a prometheus registry.
func (m *Metrics) Collectors() (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(m))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}
