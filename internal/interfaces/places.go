package interfaces

import (
	"context"

	"github.com/ternarybob/localeyes/internal/models"
)

// PlacesSearchParams are the parameters for one places-API search.
// Optional parameters that are zero-valued are omitted from the request.
type PlacesSearchParams struct {
	Query        string
	LL           string // "lat,lng"
	RadiusMeters int
	Fields       []string // comma-joined on the wire
	Limit        int
}

// PlacesService wraps the third-party places-search endpoint and
// normalizes its responses.
type PlacesService interface {
	Search(ctx context.Context, params PlacesSearchParams) ([]models.LocationSearchResult, error)
}
