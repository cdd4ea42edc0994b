// Package llm provides the text-generation client used for AI-augmented
// pathway recommendations.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for cheap tasks: short classification and summarization
	TierLite ModelTier = "lite"
	// TierStandard is the default tier for recommendation generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long grounding contexts that need stronger reasoning
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the Gemini provider
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, falling back to the
// standard tier, then lite, when a tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
