package metrics

import (
	"net/http"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimemonitor/internal/domain"
)

// Collector owns its registry so tests and multiple app instances never
// collide on the global one.
type Collector struct {
	logger         *zap.Logger
	reg            *prometheus.Registry
	probesTotal    *prometheus.CounterVec
	probeDuration  *prometheus.HistogramVec
	probeUp        *prometheus.GaugeVec
	historyEntries prometheus.Gauge
}

func NewCollector(logger *zap.Logger) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collector{
		logger: logger,
		reg:    reg,
		probesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uptime_probes_total",
				Help: "Total number of probes performed",
			},
			[]string{"check_type", "status"},
		),
		probeDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "uptime_probe_duration_seconds",
				Help:    "Duration of probes",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"check_type"},
		),
		probeUp: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "uptime_probe_up",
				Help: "Latest probe status (1 for up, 0 otherwise)",
			},
			[]string{"check_type"},
		),
		historyEntries: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "uptime_history_entries",
				Help: "Number of results currently held in the history",
			},
		),
	}
}

func (c *Collector) RecordProbe(checkType domain.CheckType, status domain.Status, latency time.Duration) {
	label := strcase.ToSnake(string(checkType))
	c.probesTotal.WithLabelValues(label, string(status)).Inc()
	c.probeDuration.WithLabelValues(label).Observe(latency.Seconds())

	up := 0.0
	if status == domain.StatusUp {
		up = 1.0
	}
	c.probeUp.WithLabelValues(label).Set(up)
}

func (c *Collector) SetHistorySize(n int) {
	c.historyEntries.Set(float64(n))
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{
		ErrorLog: zap.NewStdLog(c.logger),
	})
}
