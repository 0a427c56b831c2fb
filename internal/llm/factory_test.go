package llm

import (
	"testing"

	"github.com/Shamanthsheni/SmartCareerAI/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientOpenAI(t *testing.T) {
	client, err := NewClient(config.AIConfig{
		Provider: "openai",
		APIKey:   "test-key",
		BaseURL:  "http://localhost:9999/v1",
	})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
}

func TestNewClientProviderCaseInsensitive(t *testing.T) {
	client, err := NewClient(config.AIConfig{Provider: "OpenAI", APIKey: "test-key"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, client)
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(config.AIConfig{Provider: "anthropic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}
