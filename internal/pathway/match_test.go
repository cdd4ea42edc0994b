package pathway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

func testPathways() []db.Pathway {
	return []db.Pathway{
		{
			ID:       1,
			Question: "What stage is your business at?",
			AnswerOptions: map[string]string{
				"1": "Idea",
				"2": "Startup",
				"3": "Growth",
			},
			RecommendedResources: map[string]db.Bundle{
				"Idea": {
					OrganizationIDs: []int{1},
					Description:     "Early-stage supports",
				},
			},
		},
		{
			ID:       2,
			Question: "Do you need funding?",
			AnswerOptions: map[string]string{
				"1": "Yes",
				"2": "No",
			},
			RecommendedResources: map[string]db.Bundle{
				"Yes": {
					OrganizationIDs: []int{2},
					EventIDs:        []int{5},
				},
			},
		},
	}
}

func TestMatchOnAnswerLabel(t *testing.T) {
	matches := Match(Responses{"1": "Idea"}, testPathways())

	require.Len(t, matches, 1)
	assert.Equal(t, KindCatalogMatch, matches[0].Kind)
	assert.Equal(t, 1, matches[0].PathwayID)
	assert.Equal(t, "What stage is your business at?", matches[0].Question)
	assert.Contains(t, matches[0].Resources, "Idea")
}

func TestMatchIgnoresOptionKeys(t *testing.T) {
	// "2" is an option key on both pathways but not a label on either.
	matches := Match(Responses{"1": "2"}, testPathways())
	assert.Empty(t, matches)
}

func TestMatchAcrossMultiplePathways(t *testing.T) {
	matches := Match(Responses{"1": "Idea", "2": "Yes"}, testPathways())

	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].PathwayID)
	assert.Equal(t, 2, matches[1].PathwayID)
}

func TestMatchNoOptionsAlwaysMatches(t *testing.T) {
	pathways := []db.Pathway{{
		ID:       7,
		Question: "General resources",
		RecommendedResources: map[string]db.Bundle{
			"default": {OrganizationIDs: []int{3}},
		},
	}}

	matches := Match(Responses{}, pathways)
	require.Len(t, matches, 1)
	assert.Equal(t, 7, matches[0].PathwayID)
}

func TestMatchSkipsPathwaysWithoutResources(t *testing.T) {
	pathways := []db.Pathway{{
		ID:            3,
		Question:      "Anything else?",
		AnswerOptions: map[string]string{"1": "Yes"},
	}}

	matches := Match(Responses{"3": "Yes"}, pathways)
	assert.Empty(t, matches)
}

func TestMatchEmptyResponses(t *testing.T) {
	matches := Match(Responses{}, testPathways())
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchNumericAnswerValue(t *testing.T) {
	pathways := []db.Pathway{{
		ID:       4,
		Question: "How many employees?",
		AnswerOptions: map[string]string{
			"a": "5",
			"b": "10",
		},
		RecommendedResources: map[string]db.Bundle{
			"5": {OrganizationIDs: []int{9}},
		},
	}}

	// encoding/json decodes numbers as float64.
	matches := Match(Responses{"4": float64(5)}, pathways)
	require.Len(t, matches, 1)
	assert.Equal(t, 4, matches[0].PathwayID)
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	pathways := []db.Pathway{
		{
			ID:                   20,
			Question:             "Second in catalog order? No, first.",
			AnswerOptions:        map[string]string{"1": "Go"},
			RecommendedResources: map[string]db.Bundle{"Go": {}},
		},
		{
			ID:                   10,
			Question:             "Lower id, later position.",
			AnswerOptions:        map[string]string{"1": "Go"},
			RecommendedResources: map[string]db.Bundle{"Go": {}},
		},
	}

	matches := Match(Responses{"x": "Go"}, pathways)
	require.Len(t, matches, 2)
	assert.Equal(t, 20, matches[0].PathwayID)
	assert.Equal(t, 10, matches[1].PathwayID)
}

func TestAssembleMatchesNeverNil(t *testing.T) {
	resp := AssembleMatches(nil)
	assert.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.Recommendations)
}

func TestAssembleAI(t *testing.T) {
	resp := AssembleAI("Consider the Idea Lab accelerator.")

	require.Len(t, resp.Recommendations, 1)
	rec := resp.Recommendations[0]
	assert.Equal(t, KindAIRecommendation, rec.Kind)
	assert.Equal(t, "Consider the Idea Lab accelerator.", rec.Content)
	assert.Equal(t, "ai", rec.Source)
	assert.Zero(t, rec.PathwayID)
}
