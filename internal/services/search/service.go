package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// Service orchestrates AI-driven location searches. The completion backend
// interprets the free-text query and, for the rich variant, calls the bound
// places tool; the service validates the structured result it hands back.
type Service struct {
	provider      interfaces.CompletionProvider
	places        interfaces.PlacesService
	logger        arbor.ILogger
	variant       models.OutputVariant
	maxToolRounds int
}

// NewService creates the search orchestrator for the configured variant.
func NewService(
	config *common.SearchConfig,
	provider interfaces.CompletionProvider,
	places interfaces.PlacesService,
	logger arbor.ILogger,
) (interfaces.LocationSearchService, error) {
	variant, err := models.ParseOutputVariant(config.OutputVariant)
	if err != nil {
		return nil, err
	}
	return &Service{
		provider:      provider,
		places:        places,
		logger:        logger,
		variant:       variant,
		maxToolRounds: config.MaxToolRounds,
	}, nil
}

// Variant reports the output contract this orchestrator produces.
func (s *Service) Variant() models.OutputVariant {
	return s.variant
}

// SearchLocations runs one search. Upstream and backend errors propagate
// with their kind intact; a malformed backend response is reported as a
// schema-validation error.
func (s *Service) SearchLocations(ctx context.Context, query models.SearchQuery) (*models.SearchLocationsOutput, error) {
	if err := query.Normalize(); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("query", query.Query).
		Str("variant", string(s.variant)).
		Bool("has_location", query.UserLocation != "").
		Msg("Searching locations")

	request := &interfaces.CompletionRequest{
		Messages: []interfaces.Message{
			{Role: "user", Content: buildSearchPrompt(s.variant, query)},
		},
		MaxToolRounds: s.maxToolRounds,
	}

	switch s.variant {
	case models.VariantRich:
		request.Tools = []interfaces.ToolDefinition{
			newPlacesSearchTool(s.places, query.UserLocation),
		}
	case models.VariantLabelsOnly:
		request.OutputSchema = labelsOnlyOutputSchema()
	case models.VariantBasicFields:
		request.OutputSchema = basicFieldsOutputSchema()
	}

	resp, err := s.provider.GenerateContent(ctx, request)
	if err != nil {
		return nil, err
	}

	output, err := s.parseOutput(resp.Text)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("locations", len(output.Locations)).
		Int("labels", len(output.Labels)).
		Int("tool_calls", resp.ToolCalls).
		Msg("Search complete")

	return output, nil
}

// parseOutput decodes and validates the backend's JSON response for the
// active variant. Locations is never nil on success.
func (s *Service) parseOutput(text string) (*models.SearchLocationsOutput, error) {
	cleaned := cleanJSONFences(text)

	if s.variant == models.VariantLabelsOnly {
		var parsed struct {
			Locations []string `json:"locations"`
		}
		if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
			return nil, &models.SchemaValidationError{Reason: fmt.Sprintf("response is not valid JSON: %v", err)}
		}
		if parsed.Locations == nil {
			parsed.Locations = []string{}
		}
		return &models.SearchLocationsOutput{
			Locations: []models.LocationSearchResult{},
			Labels:    parsed.Locations,
			Variant:   s.variant,
		}, nil
	}

	var parsed struct {
		Locations []models.LocationSearchResult `json:"locations"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &models.SchemaValidationError{Reason: fmt.Sprintf("response is not valid JSON: %v", err)}
	}
	if parsed.Locations == nil {
		parsed.Locations = []models.LocationSearchResult{}
	}

	for i := range parsed.Locations {
		if err := parsed.Locations[i].Validate(); err != nil {
			return nil, &models.SchemaValidationError{
				Reason: fmt.Sprintf("location %d: %v", i, err),
			}
		}
	}

	return &models.SearchLocationsOutput{
		Locations: parsed.Locations,
		Variant:   s.variant,
	}, nil
}

// cleanJSONFences strips markdown code fences that backends sometimes wrap
// around JSON despite instructions.
func cleanJSONFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
