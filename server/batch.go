package server

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// handleConvertBatch converts up to MaxBatchFiles uploaded query files and
// streams back a ZIP. Items are isolated: a file that fails to read becomes
// a <name>_error.txt entry and the rest of the batch proceeds.
func (s *Server) handleConvertBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}
	if len(files) > s.cfg.MaxBatchFiles {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("you can upload a maximum of %d files", s.cfg.MaxBatchFiles))
		return
	}

	mode := r.FormValue("mode")
	if mode == "" {
		mode = ModeSQL
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	failures := 0
	for _, header := range files {
		name, content := s.packItem(r.Context(), header, mode)
		if strings.HasSuffix(name, "_error.txt") {
			failures++
		}
		entry, err := zw.Create(name)
		if err != nil {
			s.log.Error("zip entry failed", zap.String("file", name), zap.Error(err))
			continue
		}
		io.WriteString(entry, content)
	}

	if err := zw.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to finalize archive")
		return
	}

	s.log.Info("batch converted",
		zap.Int("files", len(files)),
		zap.Int("failures", failures),
		zap.String("mode", mode))

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename=converted_queries.zip`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// packItem converts one batch member and names its archive entry. Conversion
// failures are already diagnostics in the content; only read failures turn
// the item into an error entry.
func (s *Server) packItem(ctx context.Context, header *multipart.FileHeader, mode string) (string, string) {
	f, err := header.Open()
	if err != nil {
		return errorName(header.Filename), fmt.Sprintf("Conversion failed: %v", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return errorName(header.Filename), fmt.Sprintf("Conversion failed: %v", err)
	}

	return convertedName(header.Filename, mode), s.render(ctx, string(content), mode)
}

func errorName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + "_error.txt"
}

func convertedName(filename, mode string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	ext := ".sql"
	switch mode {
	case ModeUDF, ModePySpark, ModePython:
		ext = ".py"
	}
	return base + "_converted" + ext
}
