package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"reelview/internal/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zhulik/pal"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HTTPServer exposes /metrics and /health. It stays idle when no address is
// configured.
type HTTPServer struct {
	Logger *slog.Logger
	Config *config.Config

	checks []HealthChecker
	server *http.Server
}

// AddCheck registers a dependency consulted by /health. Must be called before Run.
func (s *HTTPServer) AddCheck(check HealthChecker) {
	s.checks = append(s.checks, check)
}

func (s *HTTPServer) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "metrics.HTTPServer")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", s.health)

	s.server = &http.Server{
		Addr:              s.Config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: time.Second,
	}
	return nil
}

// RunConfig keeps the server out of the runners pal waits for, so the process
// exits once the console is done.
func (s *HTTPServer) RunConfig() *pal.RunConfig {
	return &pal.RunConfig{Wait: false}
}

func (s *HTTPServer) Run(ctx context.Context) error {
	if s.Config.MetricsAddr == "" {
		return nil
	}

	s.Logger.Info("Starting metrics server", "addr", s.server.Addr)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.server.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	for _, check := range s.checks {
		if err := check.HealthCheck(r.Context()); err != nil {
			s.Logger.Error("Health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}
