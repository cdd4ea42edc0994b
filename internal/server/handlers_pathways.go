package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/pathway"
	"github.com/innovation-zone/ecosystem-api/internal/schemas"
)

// PathwayQueryRequest is the body for recommendation queries.
type PathwayQueryRequest struct {
	Responses pathway.Responses `json:"responses"`
}

// handleListPathways lists all pathway questions in catalog order
func (s *Server) handleListPathways(w http.ResponseWriter, r *http.Request) {
	pathways, err := s.db.ListPathways(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"pathways": pathways,
		"count":    len(pathways),
	})
}

// handleGetPathway retrieves a pathway by ID
func (s *Server) handleGetPathway(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid pathway ID")
		return
	}

	p, err := s.db.GetPathway(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if p == nil {
		s.errorResponse(w, http.StatusNotFound, "Pathway not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, p)
}

// decodePathwayBody validates the body against the pathway schema before
// decoding, so structural errors come back with field paths.
func (s *Server) decodePathwayBody(w http.ResponseWriter, r *http.Request) (*db.Pathway, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}

	if err := schemas.Validate("pathway", body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.errorResponse(w, http.StatusBadRequest, validationErr.Error())
			return nil, false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	var p db.Pathway
	if err := json.Unmarshal(body, &p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &p, true
}

// handleCreatePathway creates a new pathway question
func (s *Server) handleCreatePathway(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodePathwayBody(w, r)
	if !ok {
		return
	}

	created, err := s.db.CreatePathway(r.Context(), p)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdatePathway updates an existing pathway question
func (s *Server) handleUpdatePathway(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid pathway ID")
		return
	}

	p, ok := s.decodePathwayBody(w, r)
	if !ok {
		return
	}

	p.ID = id
	updated, err := s.db.UpdatePathway(r.Context(), p)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Pathway not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeletePathway deletes a pathway question
func (s *Server) handleDeletePathway(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid pathway ID")
		return
	}

	if err := s.db.DeletePathway(r.Context(), id); err != nil {
		s.deleteError(w, err, "Pathway")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Pathway deleted"})
}

// handlePathwayQuery answers a questionnaire submission with personalized
// recommendations. AI failures other than a missing credential report an
// error; the detailed cause is logged, never leaked to the client.
func (s *Server) handlePathwayQuery(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.Validate("pathway_query", body); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			s.errorResponse(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req PathwayQueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.pathwayService.Query(r.Context(), req.Responses)
	if err != nil {
		log.Printf("Pathway query failed: %v", err)
		var svcErr *pathway.ServiceError
		if errors.As(err, &svcErr) {
			s.errorResponse(w, http.StatusInternalServerError, "Recommendation service is temporarily unavailable")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process pathway query")
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
