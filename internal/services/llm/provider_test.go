package llm

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
)

func newTestFactory() *Factory {
	return NewFactory(
		&common.GeminiConfig{Model: "gemini-2.0-flash", Temperature: 0.7},
		&common.ClaudeConfig{Model: "claude-sonnet-4-20250514", Temperature: 0.7, MaxTokens: 4096},
		&common.LLMConfig{DefaultProvider: common.LLMProviderGemini},
		common.GetLogger(),
	)
}

func TestDetectProvider(t *testing.T) {
	f := newTestFactory()

	tests := []struct {
		model    string
		expected ProviderType
	}{
		{"", ProviderGemini},
		{"gemini-2.0-flash", ProviderGemini},
		{"gemini/gemini-2.0-flash", ProviderGemini},
		{"google/gemini-2.0-flash", ProviderGemini},
		{"claude-sonnet-4-20250514", ProviderClaude},
		{"claude/claude-sonnet-4-20250514", ProviderClaude},
		{"anthropic/claude-sonnet-4-20250514", ProviderClaude},
		{"unknown-model", ProviderGemini},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, f.DetectProvider(tt.model), "model: %s", tt.model)
	}
}

func TestNormalizeModel(t *testing.T) {
	f := newTestFactory()

	assert.Equal(t, "claude-sonnet-4-20250514", f.NormalizeModel("claude/claude-sonnet-4-20250514"))
	assert.Equal(t, "gemini-2.0-flash", f.NormalizeModel("gemini/gemini-2.0-flash"))
	assert.Equal(t, "gemini-2.0-flash", f.NormalizeModel("gemini-2.0-flash"))
}

func TestIsRateLimitError(t *testing.T) {
	assert.False(t, IsRateLimitError(nil))
	assert.True(t, IsRateLimitError(errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")))
	assert.True(t, IsRateLimitError(errors.New("quota exceeded")))
	assert.False(t, IsRateLimitError(errors.New("invalid request")))
}

func TestIsUnavailableError(t *testing.T) {
	assert.False(t, IsUnavailableError(nil))
	assert.True(t, IsUnavailableError(errors.New("503 Service Unavailable")))
	assert.True(t, IsUnavailableError(errors.New("Overloaded: please retry")))
	assert.True(t, IsUnavailableError(errors.New("status 529")))
	assert.False(t, IsUnavailableError(errors.New("400 bad request")))
}

func TestExtractRetryDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), ExtractRetryDelay(nil))
	assert.Equal(t, 30*time.Second, ExtractRetryDelay(errors.New("rate limited. Please retry in 30s")))
	assert.Equal(t, time.Duration(0), ExtractRetryDelay(errors.New("no delay here")))
}

func TestCalculateBackoff(t *testing.T) {
	c := NewDefaultRetryConfig()

	assert.Equal(t, c.InitialBackoff, c.CalculateBackoff(0, 0))
	assert.Greater(t, c.CalculateBackoff(1, 0), c.CalculateBackoff(0, 0))
	assert.LessOrEqual(t, c.CalculateBackoff(10, 0), c.MaxBackoff)
	assert.Equal(t, 5*time.Second, c.CalculateBackoff(0, 5*time.Second), "backend-suggested delay wins")
}

func TestToGenaiSchema(t *testing.T) {
	schema, err := toGenaiSchema(map[string]interface{}{
		"type":     "object",
		"required": []string{"locations"},
		"properties": map[string]interface{}{
			"locations": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]interface{}{
						"name":   map[string]interface{}{"type": "string"},
						"rating": map[string]interface{}{"type": "number"},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, schema)

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.Equal(t, []string{"locations"}, schema.Required)

	locations := schema.Properties["locations"]
	require.NotNil(t, locations)
	assert.Equal(t, genai.TypeArray, locations.Type)
	require.NotNil(t, locations.Items)
	assert.Equal(t, genai.TypeObject, locations.Items.Type)
	assert.Equal(t, genai.TypeString, locations.Items.Properties["name"].Type)
	assert.Equal(t, genai.TypeNumber, locations.Items.Properties["rating"].Type)
}

func TestToGenaiSchema_Empty(t *testing.T) {
	schema, err := toGenaiSchema(nil)
	require.NoError(t, err)
	assert.Nil(t, schema)
}

func TestConvertMessagesToGemini(t *testing.T) {
	contents, system, err := convertMessagesToGemini([]interfaces.Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "find coffee"},
		{Role: "assistant", Content: "searching"},
		{Role: "user", Content: "near me"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "be helpful", system)
	require.Len(t, contents, 3, "system messages are excluded from contents")
	assert.Equal(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, genai.RoleModel, contents[1].Role)
	assert.Equal(t, genai.RoleUser, contents[2].Role)
}

func TestConvertMessagesToGemini_RequiresUserMessage(t *testing.T) {
	_, _, err := convertMessagesToGemini([]interfaces.Message{
		{Role: "system", Content: "be helpful"},
	}, nil)
	require.Error(t, err)

	_, _, err = convertMessagesToGemini(nil, nil)
	require.Error(t, err)
}

func TestConvertMessagesToGemini_AttachesImageToLastUserMessage(t *testing.T) {
	image := &interfaces.ImagePart{MIMEType: "image/png", Data: []byte{1, 2, 3}}
	contents, _, err := convertMessagesToGemini([]interfaces.Message{
		{Role: "user", Content: "what does this sign say?"},
	}, image)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Len(t, contents[0].Parts, 2, "text part plus inline image part")
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, []string{"query"}, requiredFields(map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
	}))
	assert.Equal(t, []string{"name", "address"}, requiredFields(map[string]interface{}{
		"required": []interface{}{"name", "address"},
	}), "decoded-JSON required lists carry through")
	assert.Nil(t, requiredFields(map[string]interface{}{"type": "object"}))
}

func TestConvertMessagesToClaude(t *testing.T) {
	messages, system, err := convertMessagesToClaude([]interfaces.Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "find coffee"},
		{Role: "assistant", Content: "searching"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "be helpful", system)
	assert.Len(t, messages, 2, "system messages are carried separately")
}
