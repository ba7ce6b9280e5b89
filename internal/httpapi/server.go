package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/uptimemonitor/internal/domain"
	apimw "github.com/hamed0406/uptimemonitor/internal/httpapi/middleware"
	"github.com/hamed0406/uptimemonitor/internal/logging"
	"github.com/hamed0406/uptimemonitor/internal/repo"
)

const (
	PathCheckWebsite = "/check-website-status"
	PathCheckLogin   = "/check-login-status"
	PathHistory      = "/status-history"
	PathHealth       = "/healthz"
	PathMetrics      = "/metrics"
)

// Prober runs one check and records it.
type Prober interface {
	Probe(ctx context.Context, targetURL string, checkType domain.CheckType) domain.CheckResult
}

type Options struct {
	WebsiteURL string
	LoginURL   string
	StaticDir  string // served at / when the directory exists
	CheckRPM   int    // per-client limit on the check routes, 0 disables
	CheckBurst int
	Metrics    http.Handler // mounted at /metrics when set
}

type Server struct {
	Logger  *zap.Logger
	History repo.HistoryStore
	Prober  Prober
	opts    Options
}

func NewServer(l *zap.Logger, history repo.HistoryStore, p Prober, opts Options) *Server {
	return &Server{Logger: l, History: history, Prober: p, opts: opts}
}

// Reply is the body of both check routes.
type Reply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type reply struct {
	code int
	body Reply
}

var websiteReplies = map[domain.Status]reply{
	domain.StatusUp:    {http.StatusOK, Reply{"up", "Website is up and running."}},
	domain.StatusDown:  {http.StatusInternalServerError, Reply{"down", "Website is not accessible."}},
	domain.StatusError: {http.StatusInternalServerError, Reply{"error", "Error checking website status."}},
}

var loginReplies = map[domain.Status]reply{
	domain.StatusUp:    {http.StatusOK, Reply{"success", "Login is working."}},
	domain.StatusDown:  {http.StatusUnauthorized, Reply{"fail", "Login failed."}},
	domain.StatusError: {http.StatusInternalServerError, Reply{"error", "Error checking login status."}},
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.AllowAll().Handler)

	r.Get(PathHealth, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, PathMetrics, s.opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(apimw.RateLimit(s.opts.CheckRPM, s.opts.CheckBurst))
		r.Get(PathCheckWebsite, s.handleCheck(s.opts.WebsiteURL, domain.CheckWebsite, websiteReplies))
		r.Get(PathCheckLogin, s.handleCheck(s.opts.LoginURL, domain.CheckLogin, loginReplies))
	})
	r.Get(PathHistory, s.handleHistory)

	if s.opts.StaticDir != "" {
		if fi, err := os.Stat(s.opts.StaticDir); err == nil && fi.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(s.opts.StaticDir)))
		} else {
			s.Logger.Warn("static_dir_missing", zap.String("dir", s.opts.StaticDir))
		}
	}

	return otelhttp.NewHandler(r, "uptime-api")
}

func (s *Server) handleCheck(target string, ct domain.CheckType, replies map[domain.Status]reply) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := s.Prober.Probe(r.Context(), target, ct)
		rep, ok := replies[res.Status]
		if !ok {
			rep = replies[domain.StatusError]
		}

		logging.WithTrace(r.Context(), s.Logger).Info("check_served",
			zap.String("check_type", string(ct)),
			zap.String("status", string(res.Status)),
			zap.Int("http_status", rep.code),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
		writeJSON(w, rep.code, rep.body)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.History.Snapshot())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
