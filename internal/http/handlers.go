package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"finview/internal/core"
)

// handleDashboard serves GET /dashboard?date=YYYY-MM-DD HH:MM:SS.
// A missing date anchors the report to the current time.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	anchor := strings.TrimSpace(r.URL.Query().Get("date"))
	d, err := s.composer.Dashboard(r.Context(), anchor)
	var formatErr *core.FormatError
	if errors.As(err, &formatErr) {
		writeError(w, http.StatusBadRequest, formatErr.Error())
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard build failed", "anchor", anchor, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// handleSearch serves GET /search?q=pattern. No match yields an empty list,
// never an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	pattern := r.URL.Query().Get("q")
	rows := s.composer.SearchTransactions(r.Context(), pattern)
	writeJSON(w, http.StatusOK, rows)
}

// handleCategoryReport serves GET /reports/category?category=...&date=...
// over the trailing 90 days ending at the anchor.
func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		writeError(w, http.StatusBadRequest, "category parameter is required")
		return
	}
	anchor := strings.TrimSpace(r.URL.Query().Get("date"))

	rows, err := s.composer.ExpensesByCategory(r.Context(), category, anchor)
	var formatErr *core.FormatError
	if errors.As(err, &formatErr) {
		writeError(w, http.StatusBadRequest, formatErr.Error())
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Category report failed", "category", category, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build category report")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
