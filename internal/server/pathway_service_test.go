package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/llm"
	"github.com/innovation-zone/ecosystem-api/internal/pathway"
)

type fakeCatalogStore struct {
	pathways      []db.Pathway
	organizations []db.Organization
	programs      []db.Program
	events        []db.Event
	listErr       error
}

func (f *fakeCatalogStore) ListPathways(ctx context.Context) ([]db.Pathway, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pathways, nil
}

func (f *fakeCatalogStore) ListOrganizations(ctx context.Context) ([]db.Organization, error) {
	return f.organizations, nil
}

func (f *fakeCatalogStore) ListPrograms(ctx context.Context, filters db.ProgramFilters) ([]db.Program, error) {
	return f.programs, nil
}

func (f *fakeCatalogStore) ListEvents(ctx context.Context) ([]db.Event, error) {
	return f.events, nil
}

type stubClient struct {
	response string
	err      error
	calls    int
}

func (c *stubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.calls++
	return c.response, c.err
}

func (c *stubClient) Close() error { return nil }

func catalogStoreFixture() *fakeCatalogStore {
	return &fakeCatalogStore{
		pathways: []db.Pathway{{
			ID:            1,
			Question:      "What stage is your business in?",
			AnswerOptions: map[string]string{"idea": "Idea", "early": "Early Stage"},
			RecommendedResources: map[string]db.Bundle{
				"Idea": {OrganizationIDs: []int{1}},
			},
		}},
		organizations: []db.Organization{{ID: 1, BusinessName: "Idea Lab"}},
		programs:      []db.Program{{ID: 2, Title: "Seed Accelerator", OrganizationID: 1, ProgramType: "accelerator"}},
		events:        []db.Event{{ID: 3, Title: "Pitch Night", Location: "Hub"}},
	}
}

func TestQueryUsesAIWhenConfigured(t *testing.T) {
	client := &stubClient{response: "Try the Seed Accelerator."}
	svc := NewPathwayService(catalogStoreFixture(), pathway.NewAdvisor(client))

	resp, err := svc.Query(context.Background(), pathway.Responses{"1": "idea"})

	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, pathway.KindAIRecommendation, resp.Recommendations[0].Kind)
	assert.Equal(t, "Try the Seed Accelerator.", resp.Recommendations[0].Content)
	assert.Equal(t, 1, client.calls)
}

func TestQueryFallsBackWhenNotConfigured(t *testing.T) {
	svc := NewPathwayService(catalogStoreFixture(), pathway.NewAdvisor(nil))

	resp, err := svc.Query(context.Background(), pathway.Responses{"1": "Idea"})

	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, pathway.KindCatalogMatch, resp.Recommendations[0].Kind)
	assert.Equal(t, 1, resp.Recommendations[0].PathwayID)
}

func TestQueryDoesNotFallBackOnServiceFailure(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	svc := NewPathwayService(catalogStoreFixture(), pathway.NewAdvisor(client))

	_, err := svc.Query(context.Background(), pathway.Responses{"1": "Idea"})

	var svcErr *pathway.ServiceError
	require.ErrorAs(t, err, &svcErr)
}

func TestQueryCatalogLoadFailure(t *testing.T) {
	store := catalogStoreFixture()
	store.listErr = errors.New("connection refused")
	svc := NewPathwayService(store, pathway.NewAdvisor(nil))

	_, err := svc.Query(context.Background(), pathway.Responses{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestQueryEmptyProgramsShortCircuits(t *testing.T) {
	store := catalogStoreFixture()
	store.programs = nil
	client := &stubClient{response: "unused"}
	svc := NewPathwayService(store, pathway.NewAdvisor(client))

	resp, err := svc.Query(context.Background(), pathway.Responses{"1": "Idea"})

	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, pathway.KindAIRecommendation, resp.Recommendations[0].Kind)
	assert.Contains(t, resp.Recommendations[0].Content, "no programs currently available")
	assert.Equal(t, 0, client.calls)
}

func TestQueryNoMatchesReturnsEmptyList(t *testing.T) {
	svc := NewPathwayService(catalogStoreFixture(), pathway.NewAdvisor(nil))

	resp, err := svc.Query(context.Background(), pathway.Responses{"1": "Something Else"})

	require.NoError(t, err)
	assert.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.Recommendations)
}
