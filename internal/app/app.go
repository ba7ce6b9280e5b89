package app

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimemonitor/internal/config"
	"github.com/hamed0406/uptimemonitor/internal/httpapi"
	"github.com/hamed0406/uptimemonitor/internal/metrics"
	"github.com/hamed0406/uptimemonitor/internal/probe"
	"github.com/hamed0406/uptimemonitor/internal/repo"
	"github.com/hamed0406/uptimemonitor/internal/repo/memory"
)

// Options returns the full dependency graph of the API process.
func Options(cfg config.Config, logger *zap.Logger) fx.Option {
	return fx.Options(
		// Provide application-wide dependencies
		fx.Supply(cfg),
		fx.Supply(logger),

		fx.Provide(
			newHistory,
			metrics.NewCollector,
			newProber,
			newServer,
			newHTTPServer,
		),

		// Register lifecycle hooks
		fx.Invoke(registerHooks),

		// Configure fx logging
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.StopTimeout(max(cfg.ShutdownTimeout, defaultShutdownTimeout)+time.Second),
	)
}

func New(cfg config.Config, logger *zap.Logger, extra ...fx.Option) *fx.App {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return fx.New(append([]fx.Option{Options(cfg, logger)}, extra...)...)
}

func newHistory() repo.HistoryStore {
	return memory.New(memory.DefaultCapacity)
}

func newProber(cfg config.Config, h repo.HistoryStore, l *zap.Logger, c *metrics.Collector) *probe.Prober {
	opts := []probe.Option{
		probe.WithLogger(l),
		probe.WithMetrics(c),
	}
	if cfg.DNSDiagnostics {
		opts = append(opts, probe.WithDNSDiagnostics(probe.SystemResolver))
	}
	return probe.NewProber(h, opts...)
}

func newServer(cfg config.Config, l *zap.Logger, h repo.HistoryStore, p *probe.Prober, c *metrics.Collector) *httpapi.Server {
	return httpapi.NewServer(l, h, p, httpapi.Options{
		WebsiteURL: cfg.WebsiteURL,
		LoginURL:   cfg.LoginURL,
		StaticDir:  cfg.StaticDir,
		CheckRPM:   cfg.CheckRPM,
		CheckBurst: cfg.CheckBurst,
		Metrics:    c.Handler(),
	})
}

func newHTTPServer(cfg config.Config, s *httpapi.Server) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		// check routes wait on an outbound probe bounded by the client timeout
		WriteTimeout: probe.DefaultTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
