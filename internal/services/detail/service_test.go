package detail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

type stubProvider struct {
	text    string
	err     error
	lastReq *interfaces.CompletionRequest
}

func (p *stubProvider) GenerateContent(ctx context.Context, request *interfaces.CompletionRequest) (*interfaces.CompletionResponse, error) {
	p.lastReq = request
	if p.err != nil {
		return nil, p.err
	}
	return &interfaces.CompletionResponse{Text: p.text, Provider: "stub"}, nil
}

func (p *stubProvider) ProviderType() string { return "stub" }
func (p *stubProvider) Close() error         { return nil }

func TestGenerateDetailedDescription(t *testing.T) {
	provider := &stubProvider{text: "The Statue of Liberty is a colossal neoclassical sculpture on Liberty Island."}
	svc := NewService(provider, common.GetLogger())

	resp, err := svc.GenerateDetailedDescription(context.Background(), models.DetailRequest{
		LocationName:    "The Statue of Liberty",
		LocationType:    "Landmark",
		LocationAddress: "New York, NY 10004, USA",
		AdditionalInfo:  "Rating: 9.0",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.DetailedDescription, "Statue of Liberty")

	prompt := provider.lastReq.Messages[0].Content
	assert.Contains(t, prompt, "Location Type: Landmark")
	assert.Contains(t, prompt, "Location Name: The Statue of Liberty")
	assert.Contains(t, prompt, "Location Address: New York, NY 10004, USA")
	assert.Contains(t, prompt, "Additional Info: Rating: 9.0")
}

func TestGenerateDetailedDescription_EmptyResponseIsError(t *testing.T) {
	svc := NewService(&stubProvider{text: "   "}, common.GetLogger())

	_, err := svc.GenerateDetailedDescription(context.Background(), models.DetailRequest{
		LocationName:    "Blue Bottle",
		LocationType:    "Coffee Shop",
		LocationAddress: "1 Main St",
	})
	require.Error(t, err)
}

func TestGenerateDetailedDescription_BackendErrorPropagates(t *testing.T) {
	backendErr := &models.BackendUnavailableError{Provider: "gemini", Err: errors.New("503")}
	svc := NewService(&stubProvider{err: backendErr}, common.GetLogger())

	_, err := svc.GenerateDetailedDescription(context.Background(), models.DetailRequest{
		LocationName:    "Blue Bottle",
		LocationType:    "Coffee Shop",
		LocationAddress: "1 Main St",
	})
	require.Error(t, err)

	var unavailable *models.BackendUnavailableError
	assert.True(t, errors.As(err, &unavailable))
}
