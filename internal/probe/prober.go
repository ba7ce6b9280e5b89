package probe

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/uptimemonitor/internal/domain"
	"github.com/hamed0406/uptimemonitor/internal/logging"
	"github.com/hamed0406/uptimemonitor/internal/repo"
)

// Checker performs one request against a target.
type Checker interface {
	Check(ctx context.Context, target string) Outcome
}

// Metrics receives one observation per probe.
type Metrics interface {
	RecordProbe(checkType domain.CheckType, status domain.Status, latency time.Duration)
	SetHistorySize(n int)
}

type nopMetrics struct{}

func (nopMetrics) RecordProbe(domain.CheckType, domain.Status, time.Duration) {}
func (nopMetrics) SetHistorySize(int)                                         {}

// Prober runs a check, classifies it and records the result in the history.
type Prober struct {
	checker  Checker
	history  repo.HistoryStore
	logger   *zap.Logger
	metrics  Metrics
	resolver Resolver
	now      func() time.Time
}

type Option func(*Prober)

func WithChecker(c Checker) Option { return func(p *Prober) { p.checker = c } }

func WithLogger(l *zap.Logger) Option { return func(p *Prober) { p.logger = l } }

func WithMetrics(m Metrics) Option { return func(p *Prober) { p.metrics = m } }

// WithDNSDiagnostics logs a DNS breakdown of the target host whenever a probe
// ends in error. A nil resolver disables it.
func WithDNSDiagnostics(r Resolver) Option { return func(p *Prober) { p.resolver = r } }

func WithClock(now func() time.Time) Option { return func(p *Prober) { p.now = now } }

func NewProber(history repo.HistoryStore, opts ...Option) *Prober {
	p := &Prober{
		checker: NewHTTPChecker(DefaultTimeout),
		history: history,
		logger:  zap.NewNop(),
		metrics: nopMetrics{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Probe always returns a well-formed result and always appends it to the
// history. Transport failures are logged and classified as error, never
// returned. The caller's cancellation does not abort an in-flight probe.
func (p *Prober) Probe(ctx context.Context, targetURL string, checkType domain.CheckType) domain.CheckResult {
	ctx = context.WithoutCancel(ctx)

	out := p.checker.Check(ctx, targetURL)
	status := out.Classify()
	res := domain.NewCheckResult(checkType, status, p.now())

	p.history.Append(res)
	p.metrics.RecordProbe(checkType, status, out.Latency)
	p.metrics.SetHistorySize(p.history.Len())

	log := logging.WithTrace(ctx, p.logger).With(
		zap.String("check_type", string(checkType)),
		zap.String("url", targetURL),
		zap.String("status", string(status)),
		zap.Float64("latency_ms", float64(out.Latency.Microseconds())/1000),
	)
	if out.Err != nil {
		log.Error("probe_failed", zap.Error(out.Err))
		if p.resolver != nil {
			p.logDNS(ctx, log, targetURL)
		}
		return res
	}
	log.Info("probe_checked", zap.Int("http_status", out.StatusCode))
	return res
}

func (p *Prober) logDNS(ctx context.Context, log *zap.Logger, targetURL string) {
	dns := DiagnoseDNS(ctx, p.resolver, extractHost(targetURL))
	ips := make([]string, 0, len(dns.IPs))
	for _, ip := range dns.IPs {
		ips = append(ips, ip.String())
	}
	log.Info("dns_check",
		zap.String("domain", dns.Domain),
		zap.String("class", dns.Class),
		zap.Strings("ips", ips),
		zap.String("cname", dns.CNAME),
		zap.String("resolver_error", dns.ResolverError),
	)
}

// SystemResolver is the OS resolver used for diagnostics in production.
var SystemResolver Resolver = net.DefaultResolver
