package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCreateEvent_MissingStartDate(t *testing.T) {
	s := &Server{}

	body := `{"title":"Pitch Night","location":"Innovation Hub"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleCreateEvent(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "start_date")
}

func TestHandleCreateEvent_EndBeforeStart(t *testing.T) {
	s := &Server{}

	body := `{
		"title": "Founder Workshop",
		"location": "Innovation Hub",
		"start_date": "2026-09-10T18:00:00Z",
		"end_date": "2026-09-10T16:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleCreateEvent(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "end_date")
}

func TestHandleCreateEvent_RelativeLink(t *testing.T) {
	s := &Server{}

	body := `{
		"title": "Demo Day",
		"location": "Innovation Hub",
		"start_date": "2026-09-10T18:00:00Z",
		"link": "events/demo-day"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleCreateEvent(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "link")
}

func TestHandleGetEvent_InvalidID(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/api/events/xyz", nil)
	req.SetPathValue("id", "xyz")
	w := httptest.NewRecorder()

	s.handleGetEvent(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
