package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchLocationsOutput_WireShapePerVariant(t *testing.T) {
	rich := SearchLocationsOutput{
		Locations: []LocationSearchResult{
			{Name: "Blue Bottle", Category: "Coffee Shop", Address: "1 Main St", ImageURL: "https://placehold.co/600x400.png"},
		},
		Variant: VariantRich,
	}
	data, err := json.Marshal(rich)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations": [{"name": "Blue Bottle", "category": "Coffee Shop", "address": "1 Main St", "imageUrl": "https://placehold.co/600x400.png"}]}`, string(data))

	basic := SearchLocationsOutput{
		Locations: []LocationSearchResult{
			{Name: "Corner Kiosk", Category: "uncategorized", Address: "2 Main St", ImageURL: "https://placehold.co/600x400.png"},
		},
		Variant: VariantBasicFields,
	}
	data, err = json.Marshal(basic)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"locations":[{"name":"Corner Kiosk"`)

	labels := SearchLocationsOutput{
		Labels:  []string{"Blue Bottle", "Stumptown"},
		Variant: VariantLabelsOnly,
	}
	data, err = json.Marshal(labels)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations": ["Blue Bottle", "Stumptown"]}`, string(data),
		"labels ride under the locations key, not a separate field")
}

func TestSearchLocationsOutput_NilSlicesMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(SearchLocationsOutput{Variant: VariantRich})
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations": []}`, string(data))

	data, err = json.Marshal(SearchLocationsOutput{Variant: VariantLabelsOnly})
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations": []}`, string(data))
}
