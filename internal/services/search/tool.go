package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/localeyes/internal/interfaces"
)

// nearbyRadiusMeters is the search radius applied whenever coordinates are
// available. The backend is instructed to pass it, but the binding enforces
// it regardless of what the backend chose.
const nearbyRadiusMeters = 5000

// requiredSearchFields are always requested from the places API so that the
// normalized result can carry rating, hours and website.
var requiredSearchFields = []string{
	"fsq_id", "name", "categories", "location", "geocodes", "rating", "hours", "website",
}

// newPlacesSearchTool binds the places service as a backend-callable tool.
// userLocation, when known, overrides an absent ll argument so the backend
// cannot silently drop the user's coordinates.
func newPlacesSearchTool(places interfaces.PlacesService, userLocation string) interfaces.ToolDefinition {
	return interfaces.ToolDefinition{
		Name:        "searchFoursquare",
		Description: "Search for locations using the Foursquare API.",
		Parameters:  searchToolParametersSchema(),
		Execute: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			query, _ := args["query"].(string)
			if strings.TrimSpace(query) == "" {
				return nil, fmt.Errorf("tool searchFoursquare requires a query argument")
			}

			ll, _ := args["ll"].(string)
			if ll == "" {
				ll = userLocation
			}

			params := interfaces.PlacesSearchParams{
				Query:  query,
				LL:     ll,
				Fields: requiredSearchFields,
			}

			if radius, ok := args["radius"].(float64); ok && radius > 0 {
				params.RadiusMeters = int(radius)
			}
			// Coordinates present means the nearby radius applies, whatever
			// the backend asked for.
			if ll != "" {
				params.RadiusMeters = nearbyRadiusMeters
			}

			if fields, ok := args["fields"].(string); ok && fields != "" {
				params.Fields = mergeFields(fields)
			}

			results, err := places.Search(ctx, params)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"locations": results}, nil
		},
	}
}

// mergeFields combines the backend's requested fields with the required set,
// preserving order and dropping duplicates.
func mergeFields(requested string) []string {
	seen := make(map[string]bool, len(requiredSearchFields))
	merged := make([]string, 0, len(requiredSearchFields))
	for _, f := range requiredSearchFields {
		seen[f] = true
		merged = append(merged, f)
	}
	for _, f := range strings.Split(requested, ",") {
		f = strings.TrimSpace(f)
		if f != "" && !seen[f] {
			seen[f] = true
			merged = append(merged, f)
		}
	}
	return merged
}
