package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/csvinsight/csvinsight/internal/analysis"
)

// handleIngestCSV analyzes the raw CSV request body and persists the result.
// The optional "name" query parameter labels the analysis and becomes the
// Markdown download filename.
func (s *Server) handleIngestCSV(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readBody(w, r)
	if !ok {
		return
	}

	s.ingest(w, r, r.URL.Query().Get("name"), raw)
}

// handleIngestXLSX converts the first sheet of an uploaded XLSX workbook to
// CSV text and runs it through the same analysis pipeline as handleIngestCSV.
func (s *Server) handleIngestXLSX(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Ingest.MaxBodySize)

	wb, err := excelize.OpenReader(r.Body)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("invalid XLSX workbook: %w", err), http.StatusBadRequest)
		return
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		s.respondError(w, r, fmt.Errorf("XLSX workbook has no sheets"), http.StatusBadRequest)
		return
	}

	// The "sheet" query parameter selects a sheet by name; default is the first.
	sheet := r.URL.Query().Get("sheet")
	if sheet == "" {
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("read XLSX sheet %q: %w", sheet, err), http.StatusBadRequest)
		return
	}

	raw, err := sheetToCSV(rows)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.ingest(w, r, r.URL.Query().Get("name"), raw)
}

// ingest runs the shared ingest path: content screening, analysis, and the
// JSON response.
func (s *Server) ingest(w http.ResponseWriter, r *http.Request, name, raw string) {
	if disallowed := s.cfg.Ingest.DisallowedContent; disallowed != "" && strings.Contains(raw, disallowed) {
		s.respondError(w, r, fmt.Errorf("CSV data containing %q is not allowed", disallowed), http.StatusBadRequest)
		return
	}

	result, err := s.service.Ingest(r.Context(), name, raw)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGetAnalysis returns a single analysis by id.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	result, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleListAnalyses returns all analyses in creation order.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	results, err := s.service.List(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	if results == nil {
		results = []analysis.Analysis{}
	}
	writeJSON(w, http.StatusOK, results)
}

// handleDeleteAnalysis removes an analysis and its column statistics.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDownloadMarkdown serves the Markdown rendering of an analysis as a
// file download.
func (s *Server) handleDownloadMarkdown(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	a, md, err := s.service.Markdown(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, a.Filename()))
	io.WriteString(w, md)
}

// handlePreviewMarkdown renders the Markdown table of an analysis as HTML for
// in-browser viewing.
func (s *Server) handlePreviewMarkdown(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	_, md, err := s.service.Markdown(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	p := mdparser.NewWithExtensions(mdparser.Tables)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	html := markdown.ToHTML([]byte(md), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// readBody reads the request body up to the configured size limit.
// Writes the error response itself and returns ok=false on failure.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Ingest.MaxBodySize)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.respondError(w, r, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return "", false
		}
		s.respondError(w, r, fmt.Errorf("read request body: %w", err), http.StatusBadRequest)
		return "", false
	}
	return string(data), true
}

// parseID extracts and validates the {id} URL parameter.
// Writes the error response itself and returns ok=false on failure.
func (s *Server) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, fmt.Errorf("invalid analysis id: %w", err), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// sheetToCSV joins spreadsheet rows into the comma-and-newline CSV text the
// analysis engine expects. Ragged rows are padded to the header width so a
// sheet with trailing empty cells still parses. Cells containing a comma or
// newline are rejected because the CSV format has no quoting.
func sheetToCSV(rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	width := len(rows[0])
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for len(row) < width {
			row = append(row, "")
		}
		for _, cell := range row[:width] {
			if strings.ContainsAny(cell, ",\n") {
				return "", fmt.Errorf("invalid CSV format: sheet cell %q contains a comma or newline", cell)
			}
		}
		b.WriteString(strings.Join(row[:width], ","))
	}
	return b.String(), nil
}
