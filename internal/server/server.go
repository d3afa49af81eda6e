// Package server exposes the solve pipeline over HTTP.
//
// # Endpoints
//
//   - POST /v1/solve: tile text in the body, one rendered format out
//   - POST /v1/corners: tile text in the body, corner census as JSON
//   - GET /healthz: liveness probe
//   - GET /version: build information
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with a machine-readable code from [errors.Code].
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/tilestitch/pkg/buildinfo"
	"github.com/matzehuels/tilestitch/pkg/errors"
	pkgio "github.com/matzehuels/tilestitch/pkg/io"
	"github.com/matzehuels/tilestitch/pkg/observability"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = "localhost:8080"

	// DefaultTimeout bounds a single pipeline run.
	DefaultTimeout = 30 * time.Second

	headerRequestID = "X-Request-ID"
)

// Server handles HTTP requests with a shared pipeline runner. Each request
// parses and indexes its own tiles.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	limit    int64
	timeout  time.Duration
}

// Option configures a [Server].
type Option func(*Server)

// WithDefaults sets the options used for query parameters a request omits.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithLimit caps the request body size in bytes.
func WithLimit(n int64) Option {
	return func(s *Server) { s.limit = n }
}

// WithTimeout bounds each pipeline run.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// New creates a server around runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:  runner,
		logger:  logger,
		limit:   pkgio.DefaultLimit,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/corners", s.handleCorners)
	})
	return r
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, format, err := s.solveOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	input, err := s.readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	opts.Logger = s.logger.With("request_id", requestIDFrom(r.Context()))
	result, err := s.runner.Execute(ctx, input, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[format])
	h.Set("X-Solution-ID", result.Solved.ID)
	h.Set("X-Roughness", strconv.Itoa(result.Solved.Roughness()))
	h.Set("X-Cache", cacheStatus(result.CacheInfo.SolveHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) handleCorners(w http.ResponseWriter, r *http.Request) {
	input, err := s.readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := pipeline.Corners(input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// solveOptions merges query parameters over the server defaults. Exactly one
// format is rendered per request.
func (s *Server) solveOptions(r *http.Request) (pipeline.Options, string, error) {
	opts := s.defaults
	opts.Formats = nil
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, "", err
	}
	opts.Formats = []string{format}

	if v := q.Get("mark"); v != "" {
		opts.Mark = v
	}
	if v := q.Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, "", errors.New(errors.ErrCodeInvalidInput, "scale must be an integer, got %q", v)
		}
		opts.Scale = n
	}
	if v := q.Get("detailed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, "", errors.New(errors.ErrCodeInvalidInput, "detailed must be a boolean, got %q", v)
		}
		opts.Detailed = b
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, "", err
	}
	return opts, format, nil
}

func (s *Server) readBody(r *http.Request) ([]byte, error) {
	data, err := pkgio.ReadAll(r.Body, s.limit)
	if err != nil {
		if errors.GetCode(err) == "" {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
		}
		return nil, err
	}
	if err := errors.ValidateInputSize(int64(len(data)), s.limit); err != nil {
		return nil, err
	}
	return data, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTile,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidMotif:
		return http.StatusBadRequest
	case errors.ErrCodeAdjacency, errors.ErrCodeNoOrientation, errors.ErrCodeMotifNotFound:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeCanceled:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", requestIDFrom(r.Context()), "error", err)
		msg = "internal error"
	}

	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: requestIDFrom(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags every request with a UUID, keeping a valid one supplied by
// the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", requestIDFrom(r.Context()),
			"duration", duration)
	})
}
