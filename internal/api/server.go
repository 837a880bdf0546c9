package api

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/orient/orientgo/internal/auth"
	"github.com/orient/orientgo/internal/health"
	"github.com/orient/orientgo/internal/metrics"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	trustProxy bool
}

// NewServer creates a configured HTTP server. content holds the embedded
// frontend; trustProxy controls whether forwarded-for headers are honoured
// when logging client addresses.
func NewServer(addr string, logger *slog.Logger, authCfg auth.Config, trustProxy bool, content fs.FS) *Server {
	s := &Server{logger: logger, trustProxy: trustProxy}

	mux := http.NewServeMux()

	// Register routes.
	// Only the index itself: the exact-root pattern keeps the public
	// surface identical to the auth-exempt path set.
	mux.Handle("GET /{$}", http.FileServerFS(content))
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/sidereal/apparent", s.handleApparentSidereal)
	mux.HandleFunc("GET /api/v1/sidereal/mean", s.handleMeanSidereal)
	mux.HandleFunc("GET /api/v1/matrix/npb", s.handleNPBMatrix)
	mux.HandleFunc("POST /api/v1/convert/geodetic", s.handleToGeodetic)
	mux.HandleFunc("POST /api/v1/convert/geocentric", s.handleToGeocentric)
	mux.HandleFunc("GET /api/v1/ellipsoids", s.handleEllipsoids)

	// Build middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = s.loggingMiddleware()(handler)
	handler = metrics.Middleware(handler)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) loggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			s.logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", clientIP(r, s.trustProxy),
			)
		})
	}
}
