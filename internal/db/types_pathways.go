package db

import "time"

// Bundle is the set of catalog references and rationale text attached to one
// answer of one pathway question. References are not validated against the
// catalog at read time; dangling ids pass through to the caller.
type Bundle struct {
	OrganizationIDs []int  `json:"organization_ids,omitempty"`
	EventIDs        []int  `json:"event_ids,omitempty"`
	Description     string `json:"description,omitempty"`
}

// Pathway is a single questionnaire question with its answer options and the
// recommendation bundle configured per answer key. AnswerOptions maps answer
// key to a display label; keys in RecommendedResources refer to the same
// answer keys.
type Pathway struct {
	ID                   int               `json:"id"`
	Question             string            `json:"question"`
	AnswerOptions        map[string]string `json:"answer_options,omitempty"`
	RecommendedResources map[string]Bundle `json:"recommended_resources,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            *time.Time        `json:"updated_at,omitempty"`
}
