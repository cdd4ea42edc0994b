package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// deleteError writes the appropriate response for a failed delete.
func (s *Server) deleteError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, what+" not found")
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
}

// parseIDParam parses the {id} path value as a positive integer.
func parseIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseQueryInt parses an integer query parameter with default and max
// values.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// parseQueryBool parses an optional boolean query parameter. Returns nil
// when the parameter is absent or malformed.
func parseQueryBool(r *http.Request, key string) *bool {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return nil
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return nil
	}
	return &val
}
