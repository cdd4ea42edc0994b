package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/stage"
)

// handleListPrograms lists programs, optionally filtered by query
// parameters: search, organization_id, organization, type, stage, sector,
// is_active.
func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := db.ProgramFilters{
		Search:           query.Get("search"),
		OrganizationID:   parseQueryInt(r, "organization_id", 0, 0),
		OrganizationName: query.Get("organization"),
		ProgramType:      query.Get("type"),
		Stage:            query.Get("stage"),
		Sector:           query.Get("sector"),
		IsActive:         parseQueryBool(r, "is_active"),
	}

	programs, err := s.db.ListPrograms(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Directory searches are logged for demand analysis.
	if filters.Search != "" {
		if _, err := s.db.CreateSearchLog(r.Context(), filters.Search, len(programs)); err != nil {
			log.Printf("Failed to log search %q: %v", filters.Search, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"programs": programs,
		"count":    len(programs),
	})
}

// handleGetProgram retrieves a program by ID
func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	program, err := s.db.GetProgram(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if program == nil {
		s.errorResponse(w, http.StatusNotFound, "Program not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, program)
}

// handleCreateProgram creates a new program. When no stage is supplied, one
// is inferred from the title and description.
func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req db.Program
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.OrganizationID < 1 {
		s.errorResponse(w, http.StatusBadRequest, "organization_id is required")
		return
	}
	if req.ProgramType == "" {
		s.errorResponse(w, http.StatusBadRequest, "program_type is required")
		return
	}

	org, err := s.db.GetOrganization(r.Context(), req.OrganizationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if org == nil {
		s.errorResponse(w, http.StatusBadRequest, "organization_id does not exist")
		return
	}

	if req.Stage == nil || *req.Stage == "" {
		if inferred := stage.Categorize(req.Title, req.Description); inferred != "" {
			normalized := stage.DisplayName(inferred)
			req.Stage = &normalized
		}
	} else {
		normalized := stage.DisplayName(*req.Stage)
		req.Stage = &normalized
	}

	program, err := s.db.CreateProgram(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, program)
}

// handleUpdateProgram updates an existing program
func (s *Server) handleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	var req db.Program
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Stage != nil && *req.Stage != "" {
		normalized := stage.DisplayName(*req.Stage)
		req.Stage = &normalized
	}

	req.ID = id
	program, err := s.db.UpdateProgram(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if program == nil {
		s.errorResponse(w, http.StatusNotFound, "Program not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, program)
}

// handleDeleteProgram deletes a program
func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	if err := s.db.DeleteProgram(r.Context(), id); err != nil {
		s.deleteError(w, err, "Program")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Program deleted"})
}

// handleCategorizeProgram recategorizes a single program's stage from its
// current title and description.
func (s *Server) handleCategorizeProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid program ID")
		return
	}

	program, err := s.db.GetProgram(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if program == nil {
		s.errorResponse(w, http.StatusNotFound, "Program not found")
		return
	}

	inferred := stage.Categorize(program.Title, program.Description)
	if inferred == "" {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"id":      program.ID,
			"stage":   program.Stage,
			"updated": false,
		})
		return
	}

	normalized := stage.DisplayName(inferred)
	if program.Stage == nil || *program.Stage != normalized {
		if err := s.db.UpdateProgramStage(r.Context(), id, normalized); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":      program.ID,
		"stage":   normalized,
		"updated": program.Stage == nil || *program.Stage != normalized,
	})
}

// handleCategorizePrograms recategorizes every program in the directory and
// returns the update counts.
func (s *Server) handleCategorizePrograms(w http.ResponseWriter, r *http.Request) {
	result, err := stage.CategorizeAll(r.Context(), s.db, log.Printf)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Categorization failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
