// Package server exposes the conversion pipeline over HTTP: single-file and
// batch conversion, plus best-effort validation of converted queries. Each
// request runs its own conversion - one file's failure never touches another.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	bql "github.com/bridgeql-engine/bridgeql"
	"github.com/bridgeql-engine/bridgeql/mapping"
)

const version = "0.4.0"

// Server wires the converter, cache and UDF hook behind the HTTP routes
type Server struct {
	cfg   Config
	log   *zap.Logger
	conv  *bql.Converter
	cache *Cache
	udf   UDFConverter
}

// ServerOption configures optional collaborators
type ServerOption func(*Server)

// WithUDFConverter installs the external UDF conversion hook
func WithUDFConverter(u UDFConverter) ServerOption {
	return func(s *Server) {
		s.udf = u
	}
}

// New builds a Server from config. The rule document is loaded once here;
// a broken document is logged and conversion proceeds without remapping.
func New(cfg Config, log *zap.Logger, opts ...ServerOption) *Server {
	if cfg.MaxBatchFiles <= 0 {
		cfg.MaxBatchFiles = DefaultMaxBatchFiles
	}

	s := &Server{
		cfg:   cfg,
		log:   log,
		conv:  bql.New(bql.WithRulesFile(cfg.RulesFile)),
		cache: NewCache(cfg.Cache),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.conv.RulesErr(); err != nil {
		log.Warn("rule document unusable, converting without remapping",
			zap.String("path", cfg.RulesFile),
			zap.Error(err))
	}

	return s
}

// Routes builds the HTTP router
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleInfo)
	r.Post("/convert", s.handleConvert)
	r.Post("/convert-batch", s.handleConvertBatch)
	r.Post("/validate-query", s.handleValidate)

	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("listening",
		zap.String("addr", s.cfg.Addr),
		zap.String("source", mapping.SourceDialect),
		zap.String("target", mapping.TargetDialect))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "bridgeql",
		"version": version,
		"source":  mapping.SourceDialect,
		"target":  mapping.TargetDialect,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
