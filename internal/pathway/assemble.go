package pathway

// AssembleMatches wraps deterministic matcher output as a query response.
// A nil or empty match set yields an empty (never null) recommendations
// array.
func AssembleMatches(matches []Recommendation) QueryResponse {
	if matches == nil {
		matches = []Recommendation{}
	}
	return QueryResponse{Recommendations: matches}
}

// AssembleAI wraps a generated recommendation as a single-entry query
// response.
func AssembleAI(content string) QueryResponse {
	return QueryResponse{
		Recommendations: []Recommendation{{
			Kind:    KindAIRecommendation,
			Content: content,
			Source:  "ai",
		}},
	}
}
