package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

const fixtureResponse = `{
	"results": [
		{
			"fsq_id": "abc123",
			"name": "Blue Bottle Coffee",
			"categories": [{"id": 13034, "name": "Coffee Shop"}, {"id": 13065, "name": "Cafe"}],
			"location": {"formatted_address": "300 Webster St, Oakland, CA 94607"},
			"geocodes": {"main": {"latitude": 37.795, "longitude": -122.279}},
			"rating": 8.6,
			"hours": {"display": "Open until 6:00 PM", "open_now": true},
			"website": "https://bluebottlecoffee.com"
		},
		{
			"fsq_id": "def456",
			"name": "Corner Kiosk",
			"categories": [],
			"location": {"formatted_address": "1 Main St"}
		}
	]
}`

func newTestService(t *testing.T, handler http.HandlerFunc, apiKey string) (interfaces.PlacesService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := &common.PlacesConfig{
		APIKey:         apiKey,
		BaseURL:        server.URL,
		DefaultLimit:   20,
		RequestTimeout: 5 * time.Second,
		RateLimit:      time.Millisecond,
	}
	return NewService(config, common.GetLogger()), server
}

func TestSearch_MissingAPIKeyIsConfigurationError(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, "")

	_, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{Query: "coffee"})
	require.Error(t, err)

	var confErr *models.ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "FOURSQUARE_API_KEY", confErr.Setting)
	assert.Equal(t, int32(0), calls.Load(), "no network call should be made without a credential")
}

func TestSearch_NormalizesResults(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fsq-test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fixtureResponse))
	}, "fsq-test-key")

	results, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{Query: "coffee"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "Blue Bottle Coffee", first.Name)
	assert.Equal(t, "Coffee Shop", first.Category, "category is the first upstream entry verbatim")
	assert.Equal(t, "300 Webster St, Oakland, CA 94607", first.Address)
	assert.Equal(t, PlaceholderImageURL, first.ImageURL)
	require.NotNil(t, first.Lat)
	require.NotNil(t, first.Lng)
	assert.InDelta(t, 37.795, *first.Lat, 1e-9)
	assert.InDelta(t, -122.279, *first.Lng, 1e-9)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 8.6, *first.Rating, 1e-9, "rating keeps the upstream 0-10 scale")
	require.NotNil(t, first.Hours)
	assert.Equal(t, "Open until 6:00 PM", *first.Hours)
	require.NotNil(t, first.Website)
	assert.Equal(t, "https://bluebottlecoffee.com", *first.Website)
	require.NoError(t, first.Validate())

	second := results[1]
	assert.Equal(t, uncategorized, second.Category, "empty category list maps to uncategorized")
	assert.Nil(t, second.Lat)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.Hours)
	assert.Nil(t, second.Website, "website is absent, not empty, when unset")
}

func TestSearch_OmitsAbsentParameters(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "coffee", q.Get("query"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.False(t, q.Has("ll"), "ll must not appear as an empty parameter")
		assert.False(t, q.Has("radius"))
		assert.False(t, q.Has("fields"))
		w.Write([]byte(`{"results": []}`))
	}, "fsq-test-key")

	results, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{Query: "coffee"})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results, "zero results is a valid, successfully-empty response")
}

func TestSearch_PassesCoordinateParameters(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "40.6892,-74.0445", q.Get("ll"))
		assert.Equal(t, "5000", q.Get("radius"))
		assert.Equal(t, "fsq_id,name,categories,location,geocodes,rating,hours,website", q.Get("fields"))
		w.Write([]byte(`{"results": []}`))
	}, "fsq-test-key")

	_, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{
		Query:        "museums",
		LL:           "40.6892,-74.0445",
		RadiusMeters: 5000,
		Fields:       []string{"fsq_id", "name", "categories", "location", "geocodes", "rating", "hours", "website"},
	})
	require.NoError(t, err)
}

func TestSearch_UpstreamErrorCarriesStatusWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "rate limit exceeded"}`))
	}, "fsq-test-key")

	_, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{Query: "coffee"})
	require.Error(t, err)

	var upstreamErr *models.UpstreamRequestError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "adapter must not retry")
}

func TestSearch_IsIdempotentAgainstDeterministicUpstream(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureResponse))
	}, "fsq-test-key")

	first, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{Query: "coffee"})
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), interfaces.PlacesSearchParams{Query: "coffee"})
	require.NoError(t, err)

	assert.Equal(t, first, second, "no hidden incremental state between calls")
}
