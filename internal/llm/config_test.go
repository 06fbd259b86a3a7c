package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.InDelta(t, 0.7, config.Temperature, 0.001)
	assert.NotEmpty(t, config.GetModel(TierLite))
	assert.NotEmpty(t, config.GetModel(TierStandard))
	assert.NotEmpty(t, config.GetModel(TierAdvanced))
}

func TestConfig_GetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "lite-model",
		},
	}

	// Missing tiers fall back through standard then lite.
	assert.Equal(t, "lite-model", config.GetModel(TierAdvanced))
}

func TestConfig_GetModel_Empty(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Empty(t, config.GetModel(TierStandard))
}

func TestConfig_WithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultConfig()
	originalLite := original.GetModel(TierLite)

	modified := original.WithModel(TierLite, "custom-model")

	assert.Equal(t, "custom-model", modified.GetModel(TierLite))
	assert.Equal(t, originalLite, original.GetModel(TierLite))
	assert.Equal(t, original.Temperature, modified.Temperature)
}
