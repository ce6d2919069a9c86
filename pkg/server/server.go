package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"densityhq/callisto/pkg/api/handlers"
	"densityhq/callisto/pkg/api/middleware"
	"densityhq/callisto/pkg/config"
	"densityhq/callisto/pkg/telemetry/health"
)

// VersionInfo identifies the running build for the /version endpoint.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Server is the HTTP server for the validation API.
type Server struct {
	config       *config.Config
	deps         handlers.Deps
	version      VersionInfo
	httpServer   *http.Server
	checker      *health.Checker
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a new API server. The handler dependencies carry the
// validator plus the optional audit, metrics, and settings subsystems.
func NewServer(cfg *config.Config, deps handlers.Deps, version VersionInfo) *Server {
	s := &Server{
		config:       cfg,
		deps:         deps,
		version:      version,
		checker:      health.New(2 * time.Second),
		shutdownChan: make(chan struct{}),
	}
	if deps.Settings != nil {
		s.checker.RegisterCheck("settings", func(ctx context.Context) error {
			return deps.Settings.Ping(ctx)
		})
	}
	return s
}

// RegisterCheck adds a named readiness check. The run command uses this to
// wire the audit store without the server depending on it directly.
func (s *Server) RegisterCheck(name string, check health.CheckFunc) {
	s.checker.RegisterCheck(name, check)
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting validation server",
			"address", s.config.Server.ListenAddress,
			"default_mode", s.config.Validation.DefaultMode,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown",
			"timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("validation server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/clusters/validate", handlers.NewValidateHandler(s.deps))
	mux.Handle("/api/clusters/dependencies", handlers.NewDependenciesHandler(s.deps))
	mux.Handle("/api/clusters/schema", handlers.NewSchemaHandler(s.deps))
	mux.Handle("/api/clusters/defaults", handlers.NewDefaultsHandler(s.deps))
	mux.Handle("/api/settings", handlers.NewSettingsHandler(s.deps))

	mux.Handle("/health", s.checker.LivenessHandler())
	mux.Handle("/ready", s.checker.ReadinessHandler())
	mux.Handle("/version", health.VersionHandler(
		s.version.Version, s.version.Commit, s.version.BuildTime))

	if s.deps.Metrics != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.deps.Metrics.Handler())
	}

	var handler http.Handler = mux
	handler = middleware.Timeout(s.config.Server.RequestTimeout)(handler)
	handler = middleware.CORS(&s.config.Server.CORS)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(handler)

	if s.deps.Metrics != nil {
		handler = s.instrument(handler)
	}

	return handler
}

// statusRecorder captures the response status for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.status = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// knownRoutes bounds the path label of request metrics. Unregistered paths
// collapse into a single bucket so scanners cannot inflate cardinality.
var knownRoutes = map[string]bool{
	"/api/clusters/validate":     true,
	"/api/clusters/dependencies": true,
	"/api/clusters/schema":       true,
	"/api/clusters/defaults":     true,
	"/api/settings":              true,
	"/health":                    true,
	"/ready":                     true,
	"/version":                   true,
	"/metrics":                   true,
}

// instrument records request metrics around the whole chain.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if !knownRoutes[path] {
			path = "other"
		}
		s.deps.Metrics.RecordHTTPRequest(r.Method, path, rec.status, time.Since(start))
	})
}

// IsRunning reports whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
