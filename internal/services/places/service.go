package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// PlaceholderImageURL stands in for place photography; the upstream API
// does not provide usable photo URLs at this tier.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

// uncategorized is used when the upstream category list is empty or absent.
const uncategorized = "uncategorized"

// Service implements the PlacesService interface against the Foursquare
// Places Search API.
type Service struct {
	config     *common.PlacesConfig
	logger     arbor.ILogger
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewService creates a new Foursquare places service instance. A missing
// API key is not an error here; Search reports a ConfigurationError
// before any network call so that misconfiguration is never mistaken for
// an HTTP failure.
func NewService(config *common.PlacesConfig, logger arbor.ILogger) interfaces.PlacesService {
	return &Service{
		config: config,
		logger: logger,
		apiKey: config.APIKey,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(config.RateLimit), 1),
	}
}

// Search performs one Foursquare search and normalizes the response.
// Exactly one outbound HTTP call per invocation; no retry, no caching.
func (s *Service) Search(ctx context.Context, params interfaces.PlacesSearchParams) ([]models.LocationSearchResult, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return nil, &models.ConfigurationError{Setting: "FOURSQUARE_API_KEY"}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	limit := params.Limit
	if limit <= 0 || limit > s.config.DefaultLimit {
		limit = s.config.DefaultLimit
	}

	// Only present parameters appear in the query string.
	values := url.Values{}
	values.Set("query", params.Query)
	values.Set("limit", strconv.Itoa(limit))
	if params.LL != "" {
		values.Set("ll", params.LL)
	}
	if params.RadiusMeters > 0 {
		values.Set("radius", strconv.Itoa(params.RadiusMeters))
	}
	if len(params.Fields) > 0 {
		values.Set("fields", strings.Join(params.Fields, ","))
	}

	fullURL := fmt.Sprintf("%s?%s", s.config.BaseURL, values.Encode())

	s.logger.Debug().
		Str("query", params.Query).
		Str("ll", params.LL).
		Int("radius", params.RadiusMeters).
		Int("limit", limit).
		Msg("Calling Foursquare places search API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}
	req.Header.Set("Authorization", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Foursquare API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &models.UpstreamRequestError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var apiResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode Foursquare response: %w", err)
	}

	results := make([]models.LocationSearchResult, 0, len(apiResp.Results))
	for _, place := range apiResp.Results {
		results = append(results, normalizePlace(place))
	}

	s.logger.Info().
		Str("query", params.Query).
		Int("results_count", len(results)).
		Msg("Foursquare search completed")

	return results, nil
}

// normalizePlace maps a raw Foursquare record to the application's flat
// result shape.
func normalizePlace(place PlaceResult) models.LocationSearchResult {
	result := models.LocationSearchResult{
		Name:     place.Name,
		Category: uncategorized,
		ImageURL: PlaceholderImageURL,
	}

	if len(place.Categories) > 0 && place.Categories[0].Name != "" {
		result.Category = place.Categories[0].Name
	}

	if place.Location != nil {
		result.Address = place.Location.FormattedAddress
	}

	if place.Geocodes != nil && place.Geocodes.Main != nil {
		lat := place.Geocodes.Main.Latitude
		lng := place.Geocodes.Main.Longitude
		result.Lat = &lat
		result.Lng = &lng
	}

	// Rating stays on the upstream 0-10 scale.
	result.Rating = place.Rating

	if place.Hours != nil && place.Hours.Display != "" {
		display := place.Hours.Display
		result.Hours = &display
	}

	// Website is absent, not empty, when unset.
	if place.Website != "" {
		website := place.Website
		result.Website = &website
	}

	return result
}
