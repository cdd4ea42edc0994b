package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// handleListEvents lists all events
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.db.ListEvents(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"events": events,
		"count":  len(events),
	})
}

// handleGetEvent retrieves an event by ID
func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := s.db.GetEvent(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if event == nil {
		s.errorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, event)
}

// handleCreateEvent creates a new event
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req db.Event
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Location == "" {
		s.errorResponse(w, http.StatusBadRequest, "location is required")
		return
	}
	if req.StartDate.IsZero() {
		s.errorResponse(w, http.StatusBadRequest, "start_date is required")
		return
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		s.errorResponse(w, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}
	if req.Link != nil && *req.Link != "" {
		if u, err := url.Parse(*req.Link); err != nil || u.Scheme == "" || u.Host == "" {
			s.errorResponse(w, http.StatusBadRequest, "link must be an absolute URL")
			return
		}
	}

	event, err := s.db.CreateEvent(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, event)
}

// handleUpdateEvent updates an existing event
func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req db.Event
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	req.ID = id
	event, err := s.db.UpdateEvent(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if event == nil {
		s.errorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, event)
}

// handleDeleteEvent deletes an event
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := s.db.DeleteEvent(r.Context(), id); err != nil {
		s.deleteError(w, err, "Event")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}
