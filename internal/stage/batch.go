package stage

import (
	"context"
	"fmt"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// ProgramStore is the slice of program persistence the batch categorizer
// needs.
type ProgramStore interface {
	ListPrograms(ctx context.Context, filters db.ProgramFilters) ([]db.Program, error)
	UpdateProgramStage(ctx context.Context, id int, stage string) error
}

// BatchResult summarizes a CategorizeAll run.
type BatchResult struct {
	Total     int `json:"total"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	NoMatch   int `json:"no_match"`
}

// CategorizeAll recategorizes every program in the store. Programs whose
// inferred stage differs from the stored one are updated; programs with no
// inferable stage are left untouched and counted separately. logf receives
// per-program progress lines and may be nil.
func CategorizeAll(ctx context.Context, store ProgramStore, logf func(format string, args ...any)) (BatchResult, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	programs, err := store.ListPrograms(ctx, db.ProgramFilters{})
	if err != nil {
		return BatchResult{}, fmt.Errorf("failed to list programs: %w", err)
	}
	logf("found %d programs to categorize", len(programs))

	result := BatchResult{Total: len(programs)}
	for _, program := range programs {
		inferred := Categorize(program.Title, program.Description)
		if inferred == "" {
			result.NoMatch++
			logf("no stage match for %q", program.Title)
			continue
		}

		normalized := DisplayName(inferred)
		current := ""
		if program.Stage != nil {
			current = *program.Stage
		}
		if normalized == current {
			result.Unchanged++
			continue
		}

		if err := store.UpdateProgramStage(ctx, program.ID, normalized); err != nil {
			return result, fmt.Errorf("failed to update stage for program %d: %w", program.ID, err)
		}
		result.Updated++
		if current == "" {
			current = "none"
		}
		logf("updated %q: %s -> %s", program.Title, current, normalized)
	}

	return result, nil
}
