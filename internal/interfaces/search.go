package interfaces

import (
	"context"

	"github.com/ternarybob/localeyes/internal/models"
)

// LocationSearchService orchestrates AI-driven location searches.
type LocationSearchService interface {
	SearchLocations(ctx context.Context, query models.SearchQuery) (*models.SearchLocationsOutput, error)
	Variant() models.OutputVariant
}

// DetailService generates descriptive prose for a selected location.
type DetailService interface {
	GenerateDetailedDescription(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error)
}

// TranscriptionService extracts text from images (OCR-style).
type TranscriptionService interface {
	ImageToText(ctx context.Context, req models.TranscriptionRequest) (*models.TranscriptionResponse, error)
}
