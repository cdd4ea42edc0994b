package stage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

func TestCategorizeEmptyDescription(t *testing.T) {
	assert.Equal(t, "", Categorize("Launch Bootcamp", ""))
}

func TestCategorizeKeywordScoring(t *testing.T) {
	stage := Categorize("Growth Sprint", "Scale your business: scaling support, market expansion and revenue growth coaching.")
	assert.Equal(t, StageGrowth, stage)
}

func TestCategorizeWordBoundaries(t *testing.T) {
	// "latest" must not count as "test", "protested" must not count either.
	stage := Categorize("Newsletter", "Our latest updates for protested industries.")
	assert.Equal(t, "", stage)
}

func TestCategorizeTieBreakPrefersEarlierStage(t *testing.T) {
	// One "idea" occurrence and one "launch" occurrence: both stages score 1,
	// the earlier declared stage wins.
	stage := Categorize("", "Turn an idea into a launch.")
	assert.Equal(t, StageIdea, stage)
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, StageValidation, Categorize("", "VALIDATE your market FEASIBILITY with customer SURVEY work."))
}

func TestCategorizeFallbackIncubator(t *testing.T) {
	// No lifecycle keyword scores, but the program type implies a stage.
	assert.Equal(t, StageConcept, Categorize("", "An incubator cohort for founders."))
}

func TestCategorizeFallbackMentorshipGrowth(t *testing.T) {
	// "expanding" fails every word-bounded keyword but trips the substring
	// heuristic inside the mentorship branch.
	assert.Equal(t, StageGrowth, Categorize("", "Mentor matching for founders expanding regionally."))
}

func TestCategorizeFallbackWorkshopLaunch(t *testing.T) {
	assert.Equal(t, StageLaunch, Categorize("", "A seminar for launching your storefront."))
}

func TestCategorizeFallbackFunding(t *testing.T) {
	assert.Equal(t, StageSetup, Categorize("", "A grant for small companies."))
}

func TestCategorizeNoMatch(t *testing.T) {
	assert.Equal(t, "", Categorize("Mixer", "An evening of food and music."))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{StageGrowth, StageGrowth},
		{"scale", StageGrowth},
		{"Business Setup", StageSetup},
		{"mvp", StageMVP},
		{"Idea", StageIdea},
		{"", ""},
		{"Something Custom", "Something Custom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.in), "input %q", tt.in)
	}
}

func TestStagesOrder(t *testing.T) {
	assert.Equal(t, []string{
		StageIdea, StageValidation, StageConcept, StageMVP,
		StageSetup, StageLaunch, StageGrowth,
	}, Stages())
}

type fakeProgramStore struct {
	programs     []db.Program
	updates      map[int]string
	listErr      error
	updateErr    error
	updateCalled int
}

func (f *fakeProgramStore) ListPrograms(ctx context.Context, filters db.ProgramFilters) ([]db.Program, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.programs, nil
}

func (f *fakeProgramStore) UpdateProgramStage(ctx context.Context, id int, stage string) error {
	f.updateCalled++
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updates == nil {
		f.updates = make(map[int]string)
	}
	f.updates[id] = stage
	return nil
}

func TestCategorizeAll(t *testing.T) {
	growth := StageGrowth
	store := &fakeProgramStore{
		programs: []db.Program{
			{ID: 1, Title: "Scale Up", Description: "Scaling and expansion support for revenue growth."},
			{ID: 2, Title: "Growth Clinic", Description: "Scaling and expansion support for revenue growth.", Stage: &growth},
			{ID: 3, Title: "Mixer", Description: "An evening of food and music."},
		},
	}

	result, err := CategorizeAll(context.Background(), store, nil)

	require.NoError(t, err)
	assert.Equal(t, BatchResult{Total: 3, Updated: 1, Unchanged: 1, NoMatch: 1}, result)
	assert.Equal(t, StageGrowth, store.updates[1])
	assert.Equal(t, 1, store.updateCalled)
}

func TestCategorizeAllListFailure(t *testing.T) {
	store := &fakeProgramStore{listErr: errors.New("connection refused")}

	_, err := CategorizeAll(context.Background(), store, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list programs")
}

func TestCategorizeAllUpdateFailure(t *testing.T) {
	store := &fakeProgramStore{
		programs:  []db.Program{{ID: 1, Title: "Scale Up", Description: "Scaling and expansion support."}},
		updateErr: errors.New("deadlock"),
	}

	_, err := CategorizeAll(context.Background(), store, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update stage for program 1")
}
