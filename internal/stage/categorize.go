package stage

import (
	"regexp"
	"strings"
)

// Compiled per keyword once at startup; word boundaries keep "test" from
// matching inside "latest".
var keywordPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, entry := range stageCatalog {
		for _, keyword := range entry.Keywords {
			if _, exists := patterns[keyword]; !exists {
				patterns[keyword] = regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
			}
		}
	}
	return patterns
}()

// Categorize assigns a business stage to a program from its title and
// description. It returns "" when the description is empty or no stage can
// be inferred. Keyword occurrences are scored per stage; ties go to the
// earliest declared stage. When no keyword scores at all, program-type
// heuristics (accelerators, mentorship, workshops, funding) take over.
func Categorize(title, description string) string {
	if description == "" {
		return ""
	}

	text := strings.ToLower(title + " " + description)

	best := ""
	bestScore := 0
	for _, entry := range stageCatalog {
		score := 0
		for _, keyword := range entry.Keywords {
			score += len(keywordPatterns[keyword].FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			best = entry.Name
			bestScore = score
		}
	}
	if best != "" {
		return best
	}

	return fallbackStage(text)
}

// fallbackStage infers a stage from the kind of program the text describes
// when no lifecycle keyword appears. Checks use plain substring matching.
func fallbackStage(text string) string {
	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("accelerator", "incubator", "startup"):
		switch {
		case containsAny("early", "idea", "concept"):
			return StageIdea
		case containsAny("validate", "validation", "research"):
			return StageValidation
		default:
			return StageConcept
		}
	case containsAny("mentorship", "mentor"):
		switch {
		case containsAny("early", "idea", "starting"):
			return StageIdea
		case containsAny("growth", "scale", "expand"):
			return StageGrowth
		default:
			return StageConcept
		}
	case containsAny("workshop", "training", "seminar"):
		switch {
		case containsAny("idea", "brainstorm", "explore"):
			return StageIdea
		case containsAny("validate", "research", "market"):
			return StageValidation
		case containsAny("launch", "go to market"):
			return StageLaunch
		case containsAny("growth", "scale"):
			return StageGrowth
		default:
			return StageConcept
		}
	case containsAny("fund", "grant", "financing", "loan"):
		switch {
		case containsAny("early", "startup", "seed"):
			return StageConcept
		case containsAny("growth", "scale", "expansion"):
			return StageGrowth
		default:
			return StageSetup
		}
	}
	return ""
}

// stageAliases maps name variations to canonical stage names. Order matters:
// the first alias contained in the input wins.
var stageAliases = []struct {
	Alias string
	Name  string
}{
	{"idea", StageIdea},
	{"inspiration", StageIdea},
	{"idea / inspiration", StageIdea},
	{"validation", StageValidation},
	{"concept", StageConcept},
	{"concept development", StageConcept},
	{"mvp", StageMVP},
	{"testing", StageMVP},
	{"mvp / testing", StageMVP},
	{"setup", StageSetup},
	{"business setup", StageSetup},
	{"launch", StageLaunch},
	{"growth", StageGrowth},
	{"scale", StageGrowth},
}

// DisplayName normalizes a stage name variation to its canonical form.
// Canonical names pass through unchanged; unrecognized input is returned
// as-is.
func DisplayName(stage string) string {
	if stage == "" {
		return ""
	}
	for _, entry := range stageCatalog {
		if stage == entry.Name {
			return stage
		}
	}
	lower := strings.ToLower(stage)
	for _, alias := range stageAliases {
		if strings.Contains(lower, alias.Alias) {
			return alias.Name
		}
	}
	return stage
}
