package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	bql "github.com/bridgeql-engine/bridgeql"
)

// Conversion output modes
const (
	ModeSQL     = "sql"     // plain Spark SQL
	ModePySpark = "pyspark" // wrapped in spark.sql(...)
	ModePython  = "python"  // wrapped in duckdb.query(...)
	ModeUDF     = "udf"     // delegated to the external UDF converter
)

const maxUploadBytes = 32 << 20

// handleConvert converts one uploaded query file
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	mode := r.FormValue("mode")
	if mode == "" {
		mode = ModeSQL
	}

	converted := s.render(r.Context(), string(content), mode)

	s.log.Info("converted",
		zap.String("file", header.Filename),
		zap.String("mode", mode),
		zap.Bool("ok", !bql.IsDiagnostic(converted)))

	writeJSON(w, http.StatusOK, map[string]string{
		"filename":  header.Filename,
		"mode":      mode,
		"converted": converted,
	})
}

// render produces the output for one query in the requested mode, going
// through the cache when one is configured. Diagnostics are returned as
// content, never as an HTTP error.
func (s *Server) render(ctx context.Context, query, mode string) string {
	key := s.cacheKey(query, mode)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached
	}

	var out string
	switch mode {
	case ModeSQL:
		out = s.conv.Convert(query)
	case ModePySpark:
		out = fmt.Sprintf("df = spark.sql('''%s''')", s.conv.Convert(query))
	case ModePython:
		out = fmt.Sprintf("df = duckdb.query('''%s''').to_df()", s.conv.Convert(query))
	case ModeUDF:
		out = s.renderUDF(ctx, query)
	default:
		return bql.DiagnosticPrefix + "unsupported conversion mode '" + mode + "'"
	}

	if !bql.IsDiagnostic(out) {
		s.cache.Set(ctx, key, out)
	}
	return out
}

func (s *Server) renderUDF(ctx context.Context, source string) string {
	if s.udf == nil {
		return bql.DiagnosticPrefix + "no UDF converter configured"
	}
	out, err := s.udf.ConvertUDF(ctx, source)
	if err != nil {
		return bql.Diagnostic(err)
	}
	return out
}

func (s *Server) cacheKey(query, mode string) string {
	return CacheKey(mode, query, s.conv.Rules().Fingerprint())
}
