// Package http binds the identity resolver, the ledger service and request
// validation into the transactions JSON API.
package http

import (
	"context"
	"net/http"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/metrics"
	"fintrack/internal/middleware/ratelimit"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/services"

	"github.com/gorilla/mux"
)

// Pinger reports storage reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the optional collaborators of the server.
type Options struct {
	Health  Pinger
	Metrics *metrics.Collector
	Limiter *ratelimit.Limiter
}

// Server holds the API's collaborators. Request handlers hang off it; the
// ledger store handle is injected, never ambient.
type Server struct {
	ledger   *services.LedgerService
	resolver auth.Resolver
	opts     Options
}

// NewServer assembles the router and returns a configured http.Server.
func NewServer(addr string, ledger *services.LedgerService, resolver auth.Resolver, opts Options) *http.Server {
	s := &Server{
		ledger:   ledger,
		resolver: resolver,
		opts:     opts,
	}

	r := mux.NewRouter()

	r.HandleFunc("/transactions", s.handleListTransactions).Methods(http.MethodGet)
	r.HandleFunc("/transactions", s.handleCreateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transactions", s.handleDeleteTransaction).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.handleReadyz).Methods(http.MethodGet)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.Use(trace.Middleware)
	r.Use(security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware)
	if opts.Metrics != nil {
		r.Use(metricsMiddleware(opts.Metrics))
	}
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware(trace.ClientIP))
	}

	return &http.Server{
		Addr:    addr,
		Handler: r,
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.opts.Health != nil {
		if err := s.opts.Health.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// metricsMiddleware records request counts and latency per route template.
func metricsMiddleware(collector *metrics.Collector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			collector.RecordHTTP(r.Method, path, rw.status, time.Since(start))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
