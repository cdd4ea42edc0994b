// Package stage categorizes programs into business lifecycle stages from
// their title and description text.
package stage

// Canonical stage names. Order matters: when keyword scores tie, the
// earliest declared stage wins.
const (
	StageIdea       = "Idea / Inspiration"
	StageValidation = "Validation"
	StageConcept    = "Concept Development"
	StageMVP        = "MVP / Testing"
	StageSetup      = "Business Setup"
	StageLaunch     = "Launch"
	StageGrowth     = "Growth"
)

type stageKeywords struct {
	Name     string
	Keywords []string
}

var stageCatalog = []stageKeywords{
	{StageIdea, []string{
		"idea", "inspiration", "brainstorm", "problem", "opportunity", "explore",
		"discover", "identify", "concept", "initial", "early stage", "pre-idea",
		"ideation", "thinking", "exploring", "discovery", "opportunities",
	}},
	{StageValidation, []string{
		"validate", "validation", "market research", "customer research", "feasibility",
		"test market", "market validation", "customer validation", "demand",
		"need", "problem validation", "research", "survey", "interview",
		"market analysis", "competitive analysis", "validate idea",
	}},
	{StageConcept, []string{
		"concept", "prototype", "design", "develop concept", "shape idea",
		"solution design", "business model", "value proposition", "pitch",
		"business plan", "strategy", "planning", "framework", "blueprint",
		"develop solution", "conceptualize", "design thinking",
	}},
	{StageMVP, []string{
		"mvp", "minimum viable product", "test", "testing", "pilot", "beta",
		"prototype", "build", "develop", "create", "build product", "develop product",
		"user testing", "product development", "build mvp", "test product",
		"pilot program", "beta testing", "user feedback", "iterate",
	}},
	{StageSetup, []string{
		"setup", "incorporate", "legal", "registration", "business registration",
		"incorporation", "business license", "tax", "accounting", "bookkeeping",
		"business structure", "legal structure", "operational", "operations",
		"business model", "formalize", "establish", "register business",
		"business formation", "company setup", "start business",
	}},
	{StageLaunch, []string{
		"launch", "go to market", "market entry", "introduce", "release",
		"debut", "unveil", "rollout", "market launch", "product launch",
		"service launch", "commercial launch", "go live", "enter market",
	}},
	{StageGrowth, []string{
		"growth", "scale", "scaling", "expand", "expansion", "scale up",
		"grow business", "increase revenue", "market expansion", "scale business",
		"accelerate", "accelerator", "growth stage", "scaling up", "expand market",
		"business growth", "revenue growth", "customer acquisition", "scale operations",
	}},
}

// Stages returns the canonical stage names in declaration order.
func Stages() []string {
	names := make([]string, len(stageCatalog))
	for i, entry := range stageCatalog {
		names[i] = entry.Name
	}
	return names
}
