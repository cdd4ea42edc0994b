package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovation-zone/ecosystem-api/internal/llm"
	"github.com/innovation-zone/ecosystem-api/internal/pathway"
)

// newTestServer builds a server wired to fakes, without a database or a
// listening socket.
func newTestServer(store *fakeCatalogStore, client *stubClient) *Server {
	// A typed nil would make the advisor think a provider is configured, so
	// the interface stays nil unless a stub is supplied.
	var llmClient llm.Client
	if client != nil {
		llmClient = client
	}
	return &Server{
		pathwayService: NewPathwayService(store, pathway.NewAdvisor(llmClient)),
	}
}

func postQuery(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pathways/query", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	s.handlePathwayQuery(w, req)
	return w
}

func TestHandlePathwayQuery_InvalidJSON(t *testing.T) {
	s := newTestServer(catalogStoreFixture(), nil)

	w := postQuery(t, s, `{ not json }`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePathwayQuery_MissingResponses(t *testing.T) {
	s := newTestServer(catalogStoreFixture(), nil)

	w := postQuery(t, s, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "responses")
}

func TestHandlePathwayQuery_DeterministicFallback(t *testing.T) {
	s := newTestServer(catalogStoreFixture(), nil)

	w := postQuery(t, s, `{"responses": {"1": "Idea"}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp pathway.QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, pathway.KindCatalogMatch, resp.Recommendations[0].Kind)
	assert.Equal(t, 1, resp.Recommendations[0].PathwayID)
}

func TestHandlePathwayQuery_AIRecommendation(t *testing.T) {
	client := &stubClient{response: "Consider the Seed Accelerator."}
	s := newTestServer(catalogStoreFixture(), client)

	w := postQuery(t, s, `{"responses": {"1": "idea"}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp pathway.QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, pathway.KindAIRecommendation, resp.Recommendations[0].Kind)
	assert.Equal(t, "Consider the Seed Accelerator.", resp.Recommendations[0].Content)
}

func TestHandlePathwayQuery_ServiceFailureHidesDetail(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded for project 1234")}
	s := newTestServer(catalogStoreFixture(), client)

	w := postQuery(t, s, `{"responses": {"1": "Idea"}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Recommendation service is temporarily unavailable", resp["error"])
	assert.NotContains(t, w.Body.String(), "quota")
}

func TestHandleListPathways_StoreError(t *testing.T) {
	// Handlers that reach for s.db directly are covered in integration
	// tests; this covers the query path's catalog failure.
	store := catalogStoreFixture()
	store.listErr = errors.New("connection refused")
	s := newTestServer(store, nil)

	w := postQuery(t, s, `{"responses": {}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to process pathway query", resp["error"])
}
