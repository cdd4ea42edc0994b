package server

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// handleListOrganizations lists all organizations in the directory
func (s *Server) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	organizations, err := s.db.ListOrganizations(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"organizations": organizations,
		"count":         len(organizations),
	})
}

// handleGetOrganization retrieves an organization by ID
func (s *Server) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	organization, err := s.db.GetOrganization(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if organization == nil {
		s.errorResponse(w, http.StatusNotFound, "Organization not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, organization)
}

// validateOrganization checks required fields and enumerated values.
func validateOrganization(o *db.Organization) string {
	if o.BusinessName == "" {
		return "business_name is required"
	}
	if o.Email == "" {
		return "email is required"
	}
	if o.BusinessStage != "" && !slices.Contains(db.BusinessStages, o.BusinessStage) {
		return "invalid business_stage"
	}
	if o.LegalStructure != "" && !slices.Contains(db.LegalStructures, o.LegalStructure) {
		return "invalid legal_structure"
	}
	if o.BusinessStatus != "" && !slices.Contains(db.BusinessStates, o.BusinessStatus) {
		return "invalid business_status"
	}
	return ""
}

// handleCreateOrganization creates a new organization
func (s *Server) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req db.Organization
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if msg := validateOrganization(&req); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if req.BusinessStatus == "" {
		req.BusinessStatus = "Active"
	}

	organization, err := s.db.CreateOrganization(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, organization)
}

// handleUpdateOrganization updates an existing organization
func (s *Server) handleUpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req db.Organization
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if msg := validateOrganization(&req); msg != "" {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	req.ID = id
	organization, err := s.db.UpdateOrganization(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if organization == nil {
		s.errorResponse(w, http.StatusNotFound, "Organization not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, organization)
}

// handleDeleteOrganization deletes an organization
func (s *Server) handleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := s.db.DeleteOrganization(r.Context(), id); err != nil {
		s.deleteError(w, err, "Organization")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Organization deleted"})
}
