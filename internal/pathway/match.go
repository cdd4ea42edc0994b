package pathway

import (
	"fmt"
	"math"
	"strconv"

	"github.com/innovation-zone/ecosystem-api/internal/db"
)

// Match runs the deterministic matcher over the submitted responses and the
// pathway catalog. A pathway is included when any submitted answer equals one
// of its answer option labels, or unconditionally when it declares no answer
// options at all. Pathways without recommended resources are never included.
// Output order follows catalog order and entries are not deduplicated.
func Match(responses Responses, pathways []db.Pathway) []Recommendation {
	matches := make([]Recommendation, 0)
	for _, p := range pathways {
		if len(p.RecommendedResources) == 0 {
			continue
		}
		if len(p.AnswerOptions) > 0 && !answerMatches(responses, p.AnswerOptions) {
			continue
		}
		matches = append(matches, Recommendation{
			Kind:      KindCatalogMatch,
			PathwayID: p.ID,
			Question:  p.Question,
			Resources: p.RecommendedResources,
		})
	}
	return matches
}

// answerMatches compares submitted values against the option labels, not the
// option keys. Values are normalized to strings first so "1" and 1 compare
// equal.
func answerMatches(responses Responses, options map[string]string) bool {
	for _, submitted := range responses {
		value := stringify(submitted)
		for _, label := range options {
			if value == label {
				return true
			}
		}
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		// encoding/json decodes every number to float64.
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
