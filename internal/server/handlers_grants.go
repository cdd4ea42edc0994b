package server

import (
	"encoding/json"
	"net/http"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// handleListGrants lists grants; inactive grants are included only when
// include_inactive=true.
func (s *Server) handleListGrants(w http.ResponseWriter, r *http.Request) {
	includeInactive := false
	if v := parseQueryBool(r, "include_inactive"); v != nil {
		includeInactive = *v
	}

	grants, err := s.db.ListGrants(r.Context(), includeInactive)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"grants": grants,
		"count":  len(grants),
	})
}

// handleGetGrant retrieves a grant by ID
func (s *Server) handleGetGrant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid grant ID")
		return
	}

	grant, err := s.db.GetGrant(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if grant == nil {
		s.errorResponse(w, http.StatusNotFound, "Grant not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, grant)
}

func validateGrant(g *db.Grant) string {
	if g.Title == "" {
		return "title is required"
	}
	if g.GrantType == "" {
		return "grant_type is required"
	}
	if g.AmountMin != nil && g.AmountMax != nil && *g.AmountMin > *g.AmountMax {
		return "amount_min must not exceed amount_max"
	}
	return ""
}

// handleCreateGrant creates a new grant
func (s *Server) handleCreateGrant(w http.ResponseWriter, r *http.Request) {
	var req db.Grant
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if msg := validateGrant(&req); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	grant, err := s.db.CreateGrant(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, grant)
}

// handleUpdateGrant updates an existing grant
func (s *Server) handleUpdateGrant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid grant ID")
		return
	}

	var req db.Grant
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if msg := validateGrant(&req); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	req.ID = id
	grant, err := s.db.UpdateGrant(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if grant == nil {
		s.errorResponse(w, http.StatusNotFound, "Grant not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, grant)
}

// handleDeleteGrant deletes a grant
func (s *Server) handleDeleteGrant(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid grant ID")
		return
	}

	if err := s.db.DeleteGrant(r.Context(), id); err != nil {
		s.deleteError(w, err, "Grant")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Grant deleted"})
}
