package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputVariant selects the shape of the search orchestration output.
// The rich variant is the default; the other two are retained contract
// revisions that remain selectable by configuration.
type OutputVariant string

const (
	// VariantRich binds the places search tool and returns fully
	// normalized locations with coordinates, rating, hours and website.
	VariantRich OutputVariant = "rich"

	// VariantLabelsOnly returns bare place-name labels with no tool call.
	VariantLabelsOnly OutputVariant = "labelsOnly"

	// VariantBasicFields returns name/category/address/imageUrl only,
	// with no tool binding and no radius instruction.
	VariantBasicFields OutputVariant = "basicFields"
)

// ParseOutputVariant validates a configured variant name.
func ParseOutputVariant(s string) (OutputVariant, error) {
	switch OutputVariant(s) {
	case VariantRich, VariantLabelsOnly, VariantBasicFields:
		return OutputVariant(s), nil
	case "":
		return VariantRich, nil
	default:
		return "", fmt.Errorf("unknown output variant %q (expected rich, labelsOnly or basicFields)", s)
	}
}

// SearchQuery is one search invocation. It is constructed per request and
// discarded once the response is consumed.
type SearchQuery struct {
	Query        string `json:"query" validate:"required"`
	UserLocation string `json:"userLocation,omitempty"` // "lat,lng"
	Language     string `json:"language,omitempty"`
	MinRating    bool   `json:"minRating,omitempty"` // bias toward 4+ star results
}

// Normalize trims the query text. An empty query after trimming is
// rejected before any backend call.
func (q *SearchQuery) Normalize() error {
	q.Query = strings.TrimSpace(q.Query)
	if q.Query == "" {
		return fmt.Errorf("query must not be empty")
	}
	return nil
}

// SearchLocationsOutput is the orchestrator response. Locations is never
// nil; zero results is a valid, successfully-empty response.
type SearchLocationsOutput struct {
	// Locations carries the normalized results for the rich and
	// basicFields variants.
	Locations []LocationSearchResult `json:"locations"`

	// Labels carries the bare place names for the labelsOnly variant.
	Labels []string `json:"-"`

	// Variant names the contract the output conforms to. It selects the
	// wire shape and is not itself serialized.
	Variant OutputVariant `json:"-"`
}

// MarshalJSON emits the active contract's wire shape. Every variant puts
// its payload under the "locations" key: plain-text labels for
// labelsOnly, normalized result objects otherwise.
func (o SearchLocationsOutput) MarshalJSON() ([]byte, error) {
	if o.Variant == VariantLabelsOnly {
		labels := o.Labels
		if labels == nil {
			labels = []string{}
		}
		return json.Marshal(struct {
			Locations []string `json:"locations"`
		}{Locations: labels})
	}

	locations := o.Locations
	if locations == nil {
		locations = []LocationSearchResult{}
	}
	return json.Marshal(struct {
		Locations []LocationSearchResult `json:"locations"`
	}{Locations: locations})
}
