package interfaces

import "context"

// Message represents a single turn in a completion conversation.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ImagePart is an inline image attached to a completion request.
type ImagePart struct {
	MIMEType string
	Data     []byte
}

// ToolFunc executes a declared tool with the arguments the backend chose.
type ToolFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// ToolDefinition declares a callable capability to the completion backend.
// The backend's role is restricted to deciding call arguments and composing
// the final structured answer; execution stays in application code.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON schema for the arguments
	Execute     ToolFunc
}

// CompletionRequest is a provider-agnostic content generation request.
type CompletionRequest struct {
	Messages          []Message
	SystemInstruction string
	Model             string
	Temperature       float32
	MaxTokens         int
	OutputSchema      map[string]interface{} // JSON schema for structured output
	Tools             []ToolDefinition
	MaxToolRounds     int // bound on generate/execute cycles when tools are declared
	Image             *ImagePart
}

// CompletionResponse is a provider-agnostic content generation response.
type CompletionResponse struct {
	Text      string
	Provider  string
	Model     string
	ToolCalls int // number of tool invocations performed
}

// CompletionProvider defines the interface for AI content generation.
type CompletionProvider interface {
	GenerateContent(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)
	ProviderType() string
	Close() error
}
