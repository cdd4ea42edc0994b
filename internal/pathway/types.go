package pathway

import "github.com/innovation-zone/ecosystem-api/internal/db"

// Recommendation kinds. A catalog match carries the pathway's configured
// resource bundles; an AI recommendation carries generated prose.
const (
	KindCatalogMatch     = "catalog_match"
	KindAIRecommendation = "ai_recommendation"
)

// Responses maps a pathway id (as submitted, always a JSON string key) to the
// answer the user picked. Values are left as decoded JSON since clients send
// strings and numbers interchangeably.
type Responses map[string]any

// Recommendation is one entry in a query response. Kind discriminates which
// of the remaining fields are populated.
type Recommendation struct {
	Kind      string               `json:"kind"`
	PathwayID int                  `json:"pathway_id,omitempty"`
	Question  string               `json:"question,omitempty"`
	Resources map[string]db.Bundle `json:"resources,omitempty"`
	Content   string               `json:"content,omitempty"`
	Source    string               `json:"source,omitempty"`
}

// QueryResponse is the body returned by the pathway query endpoint.
type QueryResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}
