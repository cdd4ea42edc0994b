package server

import (
	"encoding/json"
	"net/http"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// handleListMentors lists approved mentors; unapproved profiles are included
// only when include_unapproved=true.
func (s *Server) handleListMentors(w http.ResponseWriter, r *http.Request) {
	includeUnapproved := false
	if v := parseQueryBool(r, "include_unapproved"); v != nil {
		includeUnapproved = *v
	}

	mentors, err := s.db.ListMentors(r.Context(), includeUnapproved)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"mentors": mentors,
		"count":   len(mentors),
	})
}

// handleGetMentor retrieves a mentor by ID
func (s *Server) handleGetMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid mentor ID")
		return
	}

	mentor, err := s.db.GetMentor(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if mentor == nil {
		s.errorResponse(w, http.StatusNotFound, "Mentor not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, mentor)
}

// handleCreateMentor creates a new mentor profile. New profiles start
// unapproved regardless of the submitted value.
func (s *Server) handleCreateMentor(w http.ResponseWriter, r *http.Request) {
	var req db.Mentor
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.FullName == "" {
		s.errorResponse(w, http.StatusBadRequest, "full_name is required")
		return
	}
	if req.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	req.IsApproved = false
	req.IsActive = true

	mentor, err := s.db.CreateMentor(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, mentor)
}

// handleUpdateMentor updates an existing mentor profile
func (s *Server) handleUpdateMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid mentor ID")
		return
	}

	var req db.Mentor
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.FullName == "" {
		s.errorResponse(w, http.StatusBadRequest, "full_name is required")
		return
	}

	req.ID = id
	mentor, err := s.db.UpdateMentor(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if mentor == nil {
		s.errorResponse(w, http.StatusNotFound, "Mentor not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, mentor)
}

// handleDeleteMentor deletes a mentor profile
func (s *Server) handleDeleteMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid mentor ID")
		return
	}

	if err := s.db.DeleteMentor(r.Context(), id); err != nil {
		s.deleteError(w, err, "Mentor")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Mentor deleted"})
}
