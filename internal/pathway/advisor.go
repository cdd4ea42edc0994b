package pathway

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/innovation-zone/ecosystem-api/internal/db"
	"github.com/innovation-zone/ecosystem-api/internal/llm"
	"github.com/innovation-zone/ecosystem-api/internal/prompts"
)

// DefaultTimeout bounds a single generation call to the AI provider.
const DefaultTimeout = 60 * time.Second

// Catalog is the full resource inventory the advisor is allowed to ground
// its recommendations on.
type Catalog struct {
	Pathways      []db.Pathway
	Organizations []db.Organization
	Programs      []db.Program
	Events        []db.Event
}

// Advisor produces free-text recommendations from a generative model,
// constrained to the catalog by the grounding prompt.
type Advisor struct {
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
}

// NewAdvisor creates an advisor backed by the given client. A nil client is
// allowed and yields a NotConfiguredError from Recommend, which lets callers
// decide the fallback.
func NewAdvisor(client llm.Client) *Advisor {
	return &Advisor{
		client:  client,
		tier:    llm.TierStandard,
		timeout: DefaultTimeout,
	}
}

// Configured reports whether an AI client is attached.
func (a *Advisor) Configured() bool {
	return a != nil && a.client != nil
}

// Recommend generates a personalized recommendation for the submitted
// responses, grounded on the catalog. When the catalog has no programs the
// advisor short-circuits with a fixed message and never calls the provider.
func (a *Advisor) Recommend(ctx context.Context, responses Responses, catalog Catalog) (string, error) {
	if !a.Configured() {
		return "", &NotConfiguredError{Message: "no Gemini API key provided"}
	}
	if len(catalog.Programs) == 0 {
		return prompts.MustGet("pathway.json", "no-programs"), nil
	}

	prompt := BuildGroundingPrompt(catalog) + "\n=== USER QUERY ===\n\n" + BuildUserQuery(responses, catalog.Pathways)

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.client.GenerateContent(ctx, prompt, a.tier)
	if err != nil {
		return "", &ServiceError{Message: "failed to generate recommendation", Cause: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ServiceError{Message: "provider returned an empty recommendation"}
	}
	return text, nil
}

// BuildGroundingPrompt serializes the catalog into the sectioned context
// block the model is instructed to stay within.
func BuildGroundingPrompt(catalog Catalog) string {
	var b strings.Builder
	b.WriteString(prompts.MustGet("pathway.json", "grounding-header"))

	orgNames := make(map[int]string, len(catalog.Organizations))
	for _, org := range catalog.Organizations {
		orgNames[org.ID] = org.BusinessName
	}

	b.WriteString("\n=== PATHWAYS ===\n")
	for _, p := range catalog.Pathways {
		fmt.Fprintf(&b, "Pathway %d: %s\n", p.ID, p.Question)
		for _, key := range slices.Sorted(maps.Keys(p.AnswerOptions)) {
			fmt.Fprintf(&b, "  Option %s: %s\n", key, p.AnswerOptions[key])
		}
		if len(p.RecommendedResources) > 0 {
			b.WriteString("  Recommended Resources:\n")
			for _, key := range slices.Sorted(maps.Keys(p.RecommendedResources)) {
				bundle := p.RecommendedResources[key]
				fmt.Fprintf(&b, "    Answer %s:\n", key)
				if len(bundle.OrganizationIDs) > 0 {
					fmt.Fprintf(&b, "      Organizations: %s\n", joinIDs(bundle.OrganizationIDs))
				}
				if len(bundle.EventIDs) > 0 {
					fmt.Fprintf(&b, "      Events: %s\n", joinIDs(bundle.EventIDs))
				}
				if bundle.Description != "" {
					fmt.Fprintf(&b, "      Rationale: %s\n", bundle.Description)
				}
			}
		}
	}

	b.WriteString("\n=== ORGANIZATIONS ===\n")
	for _, org := range catalog.Organizations {
		fmt.Fprintf(&b, "Organization %d: %s (stage: %s, industry: %s, location: %s)\n",
			org.ID, org.BusinessName, org.BusinessStage, org.Industry, org.BusinessLocation)
		if org.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", org.Description)
		}
		if org.BusinessSector != nil && *org.BusinessSector != "" {
			fmt.Fprintf(&b, "  Sector: %s\n", *org.BusinessSector)
		}
		if org.Website != nil && *org.Website != "" {
			fmt.Fprintf(&b, "  Website: %s\n", *org.Website)
		}
		if org.Email != "" {
			fmt.Fprintf(&b, "  Email: %s\n", org.Email)
		}
		if org.PhoneNumber != "" {
			fmt.Fprintf(&b, "  Phone: %s\n", org.PhoneNumber)
		}
	}

	b.WriteString("\n=== PROGRAMS ===\n")
	for _, prog := range catalog.Programs {
		orgName := orgNames[prog.OrganizationID]
		if prog.OrganizationName != nil && *prog.OrganizationName != "" {
			orgName = *prog.OrganizationName
		}
		fmt.Fprintf(&b, "Program %d: %s (type: %s, offered by: %s)\n",
			prog.ID, prog.Title, prog.ProgramType, orgName)
		if prog.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", prog.Description)
		}
		if prog.Stage != nil && *prog.Stage != "" {
			fmt.Fprintf(&b, "  Stage: %s\n", *prog.Stage)
		}
		if prog.Sector != nil && *prog.Sector != "" {
			fmt.Fprintf(&b, "  Sector: %s\n", *prog.Sector)
		}
	}

	b.WriteString("\n=== EVENTS ===\n")
	for _, ev := range catalog.Events {
		fmt.Fprintf(&b, "Event %d: %s (location: %s, starts: %s)\n",
			ev.ID, ev.Title, ev.Location, ev.StartDate.Format("2006-01-02"))
		if ev.Description != nil && *ev.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", *ev.Description)
		}
		if ev.Category != nil && *ev.Category != "" {
			fmt.Fprintf(&b, "  Category: %s\n", *ev.Category)
		}
		if ev.Audience != nil && *ev.Audience != "" {
			fmt.Fprintf(&b, "  Audience: %s\n", *ev.Audience)
		}
		if ev.EndDate != nil {
			fmt.Fprintf(&b, "  Ends: %s\n", ev.EndDate.Format("2006-01-02"))
		}
		if ev.Link != nil && *ev.Link != "" {
			fmt.Fprintf(&b, "  Link: %s\n", *ev.Link)
		}
	}

	b.WriteString(prompts.MustGet("pathway.json", "grounding-instructions"))
	return b.String()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

// BuildUserQuery renders the submitted responses as question/answer pairs.
// Pathways are walked in catalog order so the rendering is deterministic;
// submitted keys that resolve to no pathway are skipped. The answer is shown
// as the option label when the submitted value is a known option key, and as
// the raw value otherwise.
func BuildUserQuery(responses Responses, pathways []db.Pathway) string {
	var b strings.Builder
	b.WriteString(prompts.MustGet("pathway.json", "user-query-header"))

	for _, p := range pathways {
		submitted, ok := responses[strconv.Itoa(p.ID)]
		if !ok {
			continue
		}
		answer := stringify(submitted)
		if label, found := p.AnswerOptions[answer]; found {
			answer = label
		}
		fmt.Fprintf(&b, "Question: %s\nAnswer: %s\n\n", p.Question, answer)
	}

	b.WriteString(prompts.MustGet("pathway.json", "user-query-footer"))
	return b.String()
}
