package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// convertMessagesToGemini converts []interfaces.Message to Gemini Content
// format. System messages are extracted separately for use with
// SystemInstruction. An inline image, when present, is attached to the
// last user message.
func convertMessagesToGemini(messages []interfaces.Message, image *interfaces.ImagePart) ([]*genai.Content, string, error) {
	if len(messages) == 0 {
		return nil, "", fmt.Errorf("messages cannot be empty")
	}

	contents := make([]*genai.Content, 0, len(messages))
	var systemText string
	lastUserIdx := -1

	for _, msg := range messages {
		if msg.Role == "system" {
			if systemText == "" {
				systemText = msg.Content
			}
			continue
		}

		var geminiRole string
		switch msg.Role {
		case "assistant":
			geminiRole = genai.RoleModel
		default:
			geminiRole = genai.RoleUser
		}

		content := &genai.Content{
			Role:  geminiRole,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		}
		contents = append(contents, content)
		if geminiRole == genai.RoleUser {
			lastUserIdx = len(contents) - 1
		}
	}

	if lastUserIdx < 0 {
		return nil, "", fmt.Errorf("at least one message must have role 'user'")
	}

	if image != nil {
		contents[lastUserIdx].Parts = append(contents[lastUserIdx].Parts,
			genai.NewPartFromBytes(image.Data, image.MIMEType))
	}

	return contents, systemText, nil
}

// generateWithGemini generates content using the Gemini API, running the
// tool-calling loop when the request declares tools.
func (f *Factory) generateWithGemini(ctx context.Context, request *interfaces.CompletionRequest, model string) (*interfaces.CompletionResponse, error) {
	client, err := f.getGeminiClient(ctx)
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = f.geminiConfig.Model
	}

	contents, systemText, err := convertMessagesToGemini(request.Messages, request.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to convert messages: %w", err)
	}
	if request.SystemInstruction != "" {
		systemText = request.SystemInstruction
	}

	temp := request.Temperature
	if temp <= 0 {
		temp = f.geminiConfig.Temperature
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temp),
	}
	if systemText != "" {
		config.SystemInstruction = genai.NewContentFromText(systemText, genai.RoleUser)
	}

	// Structured output and function calling are mutually exclusive on
	// the Gemini API; with tools declared, the output format is carried
	// by the prompt and validated by the caller.
	if len(request.Tools) > 0 {
		declarations := make([]*genai.FunctionDeclaration, 0, len(request.Tools))
		for _, tool := range request.Tools {
			paramSchema, err := toGenaiSchema(tool.Parameters)
			if err != nil {
				return nil, fmt.Errorf("failed to convert parameters for tool %s: %w", tool.Name, err)
			}
			declarations = append(declarations, &genai.FunctionDeclaration{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  paramSchema,
			})
		}
		config.Tools = []*genai.Tool{{FunctionDeclarations: declarations}}
	} else if len(request.OutputSchema) > 0 {
		genaiSchema, err := toGenaiSchema(request.OutputSchema)
		if err != nil {
			f.logger.Error().Err(err).Msg("Failed to convert output schema")
		} else if genaiSchema != nil {
			config.ResponseMIMEType = "application/json"
			config.ResponseSchema = genaiSchema
		}
	}

	toolCalls := 0
	rounds := maxToolRounds(request)

	for round := 0; ; round++ {
		resp, err := f.geminiGenerateWithRetry(ctx, client, model, contents, config)
		if err != nil {
			return nil, err
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			// An empty completion is a valid result; callers that require
			// text (OCR treats it as "no readable text") decide for
			// themselves.
			return &interfaces.CompletionResponse{
				Text:      resp.Text(),
				Provider:  string(ProviderGemini),
				Model:     model,
				ToolCalls: toolCalls,
			}, nil
		}

		if round >= rounds {
			return nil, fmt.Errorf("tool-calling loop exceeded %d rounds", rounds)
		}

		// Echo the model turn, then answer every function call.
		contents = append(contents, resp.Candidates[0].Content)
		responseParts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			tool := findTool(request.Tools, call.Name)
			if tool == nil {
				return nil, fmt.Errorf("backend requested undeclared tool %q", call.Name)
			}

			f.logger.Debug().
				Str("tool", call.Name).
				Msg("Executing backend-requested tool call")

			result, err := tool.Execute(ctx, call.Args)
			if err != nil {
				// Tool errors propagate unchanged in kind; the
				// orchestrator does not mask or retry them.
				return nil, err
			}
			responseParts = append(responseParts,
				genai.NewPartFromFunctionResponse(call.Name, toResponseMap(result)))
			toolCalls++
		}
		contents = append(contents, &genai.Content{
			Role:  genai.RoleUser,
			Parts: responseParts,
		})
	}
}

// geminiGenerateWithRetry issues one GenerateContent call, retrying only
// rate-limit errors.
func (f *Factory) geminiGenerateWithRetry(ctx context.Context, client *genai.Client, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	retryConfig := NewDefaultRetryConfig()

	var resp *genai.GenerateContentResponse
	var apiErr error

	for attempt := 0; attempt <= retryConfig.MaxRetries; attempt++ {
		resp, apiErr = client.Models.GenerateContent(ctx, model, contents, config)
		if apiErr == nil {
			break
		}

		if attempt == retryConfig.MaxRetries || !IsRateLimitError(apiErr) {
			break
		}

		backoff := retryConfig.CalculateBackoff(attempt, ExtractRetryDelay(apiErr))
		f.logger.Warn().
			Int("attempt", attempt+1).
			Dur("backoff", backoff).
			Err(apiErr).
			Msg("Retrying Gemini API call")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	if apiErr != nil {
		if IsUnavailableError(apiErr) {
			return nil, &models.BackendUnavailableError{Provider: string(ProviderGemini), Err: apiErr}
		}
		return nil, fmt.Errorf("Gemini API call failed: %w", apiErr)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini API")
	}

	return resp, nil
}

// toResponseMap shapes an arbitrary tool result into the map form the
// function-response part requires.
func toResponseMap(result interface{}) map[string]interface{} {
	data, err := json.Marshal(result)
	if err != nil {
		return map[string]interface{}{"output": fmt.Sprintf("%v", result)}
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(data, &asMap); err != nil {
		return map[string]interface{}{"output": json.RawMessage(data)}
	}
	return asMap
}
