package detail

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

const detailSystemInstruction = `You are an AI assistant that provides detailed descriptions of locations.

You will receive the location type, name, address, and any additional information about the location.
Your task is to generate a comprehensive description that includes the address and other relevant details, such as menu highlights for restaurants or amenities for hotels.`

// Service generates on-demand descriptive prose for a selected location.
// Each request is a fresh single completion; nothing is cached.
type Service struct {
	provider interfaces.CompletionProvider
	logger   arbor.ILogger
}

// NewService creates the detail-description service.
func NewService(provider interfaces.CompletionProvider, logger arbor.ILogger) interfaces.DetailService {
	return &Service{provider: provider, logger: logger}
}

// GenerateDetailedDescription produces a description for one location.
func (s *Service) GenerateDetailedDescription(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
	s.logger.Info().
		Str("location", req.LocationName).
		Str("type", req.LocationType).
		Msg("Generating location description")

	var b strings.Builder
	fmt.Fprintf(&b, "Location Type: %s\n", req.LocationType)
	fmt.Fprintf(&b, "Location Name: %s\n", req.LocationName)
	fmt.Fprintf(&b, "Location Address: %s\n", req.LocationAddress)
	if req.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional Info: %s\n", req.AdditionalInfo)
	}
	b.WriteString("\nDetailed Description:")

	resp, err := s.provider.GenerateContent(ctx, &interfaces.CompletionRequest{
		SystemInstruction: detailSystemInstruction,
		Messages: []interfaces.Message{
			{Role: "user", Content: b.String()},
		},
	})
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(resp.Text)
	if description == "" {
		return nil, fmt.Errorf("backend returned an empty description for %s", req.LocationName)
	}

	return &models.DetailResponse{DetailedDescription: description}, nil
}
