package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bridgeql-engine/bridgeql/engine/validator"
)

// handleValidate checks a converted query for syntax errors and unknown
// function names. Validation is best-effort and advisory; it never mutates
// the query.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	query := r.FormValue("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query")
		return
	}

	result := validator.ValidateWithDetails(query)

	s.log.Info("validated",
		zap.Bool("valid", result.Valid),
		zap.Int("hints", len(result.Hints)))

	body := map[string]any{
		"status": "success",
	}
	if !result.Valid {
		body["status"] = "failed"
		body["message"] = result.Error
		if result.Line > 0 {
			body["line"] = result.Line
			body["column"] = result.Column
		}
	}
	if len(result.Hints) > 0 {
		body["hints"] = result.Hints
	}

	writeJSON(w, http.StatusOK, body)
}
