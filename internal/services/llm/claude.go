package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// convertMessagesToClaude converts []interfaces.Message to Claude message
// format. System messages are extracted separately. An inline image, when
// present, is attached to the last user message.
func convertMessagesToClaude(messages []interfaces.Message, image *interfaces.ImagePart) ([]anthropic.MessageParam, string, error) {
	if len(messages) == 0 {
		return nil, "", fmt.Errorf("messages cannot be empty")
	}

	claudeMessages := make([]anthropic.MessageParam, 0, len(messages))
	var systemText string
	lastUserIdx := -1

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			if systemText == "" {
				systemText = msg.Content
			}
		case "assistant":
			claudeMessages = append(claudeMessages, anthropic.NewAssistantMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		default:
			claudeMessages = append(claudeMessages, anthropic.NewUserMessage(
				anthropic.NewTextBlock(msg.Content),
			))
			lastUserIdx = len(claudeMessages) - 1
		}
	}

	if lastUserIdx < 0 {
		return nil, "", fmt.Errorf("at least one message must have role 'user'")
	}

	if image != nil {
		encoded := base64.StdEncoding.EncodeToString(image.Data)
		claudeMessages[lastUserIdx].Content = append(claudeMessages[lastUserIdx].Content,
			anthropic.NewImageBlockBase64(image.MIMEType, encoded))
	}

	return claudeMessages, systemText, nil
}

// requiredFields extracts a JSON schema's required-property list,
// accepting both the typed and the decoded-JSON representations.
func requiredFields(schema map[string]interface{}) []string {
	switch reqVals := schema["required"].(type) {
	case []string:
		return reqVals
	case []interface{}:
		fields := make([]string, 0, len(reqVals))
		for _, v := range reqVals {
			if s, ok := v.(string); ok {
				fields = append(fields, s)
			}
		}
		return fields
	}
	return nil
}

// generateWithClaude generates content using the Claude API, running the
// tool-use loop when the request declares tools.
func (f *Factory) generateWithClaude(ctx context.Context, request *interfaces.CompletionRequest, model string) (*interfaces.CompletionResponse, error) {
	client, err := f.getClaudeClient()
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = f.claudeConfig.Model
	}

	claudeMessages, systemText, err := convertMessagesToClaude(request.Messages, request.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to convert messages: %w", err)
	}
	if request.SystemInstruction != "" {
		systemText = request.SystemInstruction
	}

	maxTokens := request.MaxTokens
	if maxTokens <= 0 {
		maxTokens = f.claudeConfig.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  claudeMessages,
	}

	temp := request.Temperature
	if temp <= 0 {
		temp = f.claudeConfig.Temperature
	}
	if temp > 0 {
		params.Temperature = anthropic.Float(float64(temp))
	}

	if systemText != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemText},
		}
	}

	// Claude has no response-schema parameter; the output format rides in
	// the prompt and the caller validates the parsed result.
	if len(request.Tools) > 0 {
		toolParams := make([]anthropic.ToolUnionParam, 0, len(request.Tools))
		for _, tool := range request.Tools {
			properties, _ := tool.Parameters["properties"].(map[string]interface{})
			toolParam := anthropic.ToolParam{
				Name:        tool.Name,
				Description: anthropic.String(tool.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: properties,
					Required:   requiredFields(tool.Parameters),
				},
			}
			toolParams = append(toolParams, anthropic.ToolUnionParam{OfTool: &toolParam})
		}
		params.Tools = toolParams
	}

	toolCalls := 0
	rounds := maxToolRounds(request)

	for round := 0; ; round++ {
		resp, err := f.claudeGenerateWithRetry(ctx, client, params)
		if err != nil {
			return nil, err
		}

		var text strings.Builder
		var toolUses []anthropic.ToolUseBlock
		for _, block := range resp.Content {
			switch variant := block.AsAny().(type) {
			case anthropic.TextBlock:
				text.WriteString(variant.Text)
			case anthropic.ToolUseBlock:
				toolUses = append(toolUses, variant)
			}
		}

		if resp.StopReason != "tool_use" || len(toolUses) == 0 {
			// An empty completion is a valid result; callers decide
			// whether empty text is acceptable.
			return &interfaces.CompletionResponse{
				Text:      text.String(),
				Provider:  string(ProviderClaude),
				Model:     model,
				ToolCalls: toolCalls,
			}, nil
		}

		if round >= rounds {
			return nil, fmt.Errorf("tool-calling loop exceeded %d rounds", rounds)
		}

		params.Messages = append(params.Messages, resp.ToParam())
		resultBlocks := make([]anthropic.ContentBlockParamUnion, 0, len(toolUses))
		for _, toolUse := range toolUses {
			tool := findTool(request.Tools, toolUse.Name)
			if tool == nil {
				return nil, fmt.Errorf("backend requested undeclared tool %q", toolUse.Name)
			}

			var args map[string]interface{}
			if err := json.Unmarshal(toolUse.Input, &args); err != nil {
				return nil, fmt.Errorf("failed to decode arguments for tool %s: %w", toolUse.Name, err)
			}

			f.logger.Debug().
				Str("tool", toolUse.Name).
				Msg("Executing backend-requested tool call")

			result, err := tool.Execute(ctx, args)
			if err != nil {
				// Tool errors propagate unchanged in kind.
				return nil, err
			}

			resultJSON, marshalErr := json.Marshal(result)
			if marshalErr != nil {
				return nil, fmt.Errorf("failed to encode result for tool %s: %w", toolUse.Name, marshalErr)
			}
			resultBlocks = append(resultBlocks,
				anthropic.NewToolResultBlock(toolUse.ID, string(resultJSON), false))
			toolCalls++
		}
		params.Messages = append(params.Messages, anthropic.NewUserMessage(resultBlocks...))
	}
}

// claudeGenerateWithRetry issues one Messages.New call, retrying only
// rate-limit errors.
func (f *Factory) claudeGenerateWithRetry(ctx context.Context, client anthropic.Client, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	retryConfig := NewDefaultRetryConfig()

	var resp *anthropic.Message
	var apiErr error

	for attempt := 0; attempt <= retryConfig.MaxRetries; attempt++ {
		resp, apiErr = client.Messages.New(ctx, params)
		if apiErr == nil {
			break
		}

		if attempt == retryConfig.MaxRetries || !IsRateLimitError(apiErr) {
			break
		}

		backoff := retryConfig.CalculateBackoff(attempt, 0)
		f.logger.Warn().
			Int("attempt", attempt+1).
			Dur("backoff", backoff).
			Err(apiErr).
			Msg("Retrying Claude API call")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	if apiErr != nil {
		if IsUnavailableError(apiErr) {
			return nil, &models.BackendUnavailableError{Provider: string(ProviderClaude), Err: apiErr}
		}
		return nil, fmt.Errorf("Claude API call failed: %w", apiErr)
	}

	return resp, nil
}
