package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dreamware/strand/internal/logger"
	"github.com/dreamware/strand/internal/storage"
)

// Options configures optional server behavior
type Options struct {
	// RateLimit is the sustained requests-per-second budget.
	// Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the token bucket size when RateLimit is enabled.
	RateBurst int
}

// Server holds the HTTP handlers and their shared dependencies.
// Construct with New; the zero value is not usable.
type Server struct {
	store   *storage.Store
	log     *zap.SugaredLogger
	limiter *rate.Limiter // nil when rate limiting is disabled
}

// New creates a server around the given store
func New(store *storage.Store, opts Options) *Server {
	s := &Server{
		store: store,
		log:   logger.Logger,
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return s
}

// Handler returns the fully assembled HTTP handler: routes wrapped in the
// middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /stats", s.handleStats)

	mux.HandleFunc("POST /strings", s.handleCreateString)
	mux.HandleFunc("GET /strings", s.handleListStrings)
	// The literal route must be registered alongside the {value} wildcard;
	// ServeMux prefers the more specific literal match.
	mux.HandleFunc("GET /strings/filter-by-natural-language", s.handleFilterByNaturalLanguage)
	mux.HandleFunc("GET /strings/{value}", s.handleGetString)
	mux.HandleFunc("DELETE /strings/{value}", s.handleDeleteString)

	return s.requestLogMiddleware(s.rateLimitMiddleware(mux))
}

// statusRecorder captures the status code a handler writes
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogMiddleware assigns each request an id and logs its completion
// with method, path, status, and duration.
func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Infow("request complete",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// rateLimitMiddleware sheds load with 429 when the token bucket is empty.
// Pass-through when rate limiting is disabled.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
