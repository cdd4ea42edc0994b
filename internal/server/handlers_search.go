package server

import (
	"encoding/json"
	"net/http"
)

// SearchLogRequest is the body for recording a directory search.
type SearchLogRequest struct {
	Query        string `json:"query"`
	ResultsCount int    `json:"results_count"`
}

// handleLogSearch records a search query for demand analysis
func (s *Server) handleLogSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Query == "" {
		s.errorResponse(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.ResultsCount < 0 {
		s.errorResponse(w, http.StatusBadRequest, "results_count must be non-negative")
		return
	}

	entry, err := s.db.CreateSearchLog(r.Context(), req.Query, req.ResultsCount)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, entry)
}

// handleListSearchLogs lists recorded searches, most recent first
func (s *Server) handleListSearchLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.db.ListSearchLogs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"search_logs": logs,
		"count":       len(logs),
	})
}
