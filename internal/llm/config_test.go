package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_FallbackToStandard(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{
		TierStandard: "gemini-2.5-flash",
	}}

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierLite))
}

func TestGetModel_FallbackToLite(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{
		TierLite: "gemini-2.5-flash-lite",
	}}

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierStandard))
}

func TestGetModel_Empty(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierStandard))
}
