package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationValidate(t *testing.T) {
	valid := LocationSearchResult{
		Name:     "Blue Bottle",
		Category: "Coffee Shop",
		Address:  "1 Main St",
		ImageURL: "https://placehold.co/600x400.png",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*LocationSearchResult)
	}{
		{"missing name", func(l *LocationSearchResult) { l.Name = "" }},
		{"blank name", func(l *LocationSearchResult) { l.Name = "  " }},
		{"missing category", func(l *LocationSearchResult) { l.Category = "" }},
		{"missing address", func(l *LocationSearchResult) { l.Address = "" }},
		{"missing imageUrl", func(l *LocationSearchResult) { l.ImageURL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)
			assert.Error(t, l.Validate())
		})
	}
}

func TestDisplayRating(t *testing.T) {
	assert.Equal(t, 4.5, DisplayRating(9.0))
	assert.Equal(t, 0.0, DisplayRating(0))
	assert.Equal(t, 5.0, DisplayRating(10))
}

func TestCategoryIcon(t *testing.T) {
	tests := []struct {
		category string
		icon     string
	}{
		{"Fast Food Restaurant", "utensils"},
		{"Coffee Shop", "utensils"},
		{"Boutique Hotel", "bed"},
		{"Children's Hospital", "stethoscope"},
		{"National Park", "tree"},
		{"Art Gallery", "landmark"},
		{"Landmark", "landmark"},
		{"Something Else", "map-pin"},
		{"", "map-pin"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.icon, CategoryIcon(tt.category), "category: %s", tt.category)
	}
}

func TestParseOutputVariant(t *testing.T) {
	for _, valid := range []string{"rich", "labelsOnly", "basicFields"} {
		v, err := ParseOutputVariant(valid)
		assert.NoError(t, err)
		assert.Equal(t, OutputVariant(valid), v)
	}

	v, err := ParseOutputVariant("")
	assert.NoError(t, err)
	assert.Equal(t, VariantRich, v, "empty defaults to the rich contract")

	_, err = ParseOutputVariant("fancy")
	assert.Error(t, err)
}

func TestSearchQueryNormalize(t *testing.T) {
	q := SearchQuery{Query: "  coffee  "}
	assert.NoError(t, q.Normalize())
	assert.Equal(t, "coffee", q.Query)

	empty := SearchQuery{Query: "   "}
	assert.Error(t, empty.Normalize())
}
