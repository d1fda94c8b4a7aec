package models

import (
	"fmt"
	"strings"
)

// LocationSearchResult is one normalized place returned to the client.
// Name, Category, Address and ImageURL are always present; the remaining
// fields are pointers so that "not provided" survives JSON round trips
// (0 is a meaningful rating, "" is a meaningful-looking hours value).
type LocationSearchResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Address  string   `json:"address"`
	ImageURL string   `json:"imageUrl"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Rating   *float64 `json:"rating,omitempty"` // upstream 0-10 scale
	Hours    *string  `json:"hours,omitempty"`
	Website  *string  `json:"website,omitempty"`
}

// Validate checks the required-field invariant.
func (l *LocationSearchResult) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location name is required")
	}
	if strings.TrimSpace(l.Category) == "" {
		return fmt.Errorf("location category is required")
	}
	if strings.TrimSpace(l.Address) == "" {
		return fmt.Errorf("location address is required")
	}
	if strings.TrimSpace(l.ImageURL) == "" {
		return fmt.Errorf("location imageUrl is required")
	}
	return nil
}

// DisplayRating converts an upstream 0-10 rating to the 0-5 star scale
// used for presentation. The 0-10 value is the canonical internal scale;
// this conversion happens only at the presentation boundary.
func DisplayRating(rating float64) float64 {
	return rating / 2
}

// CategoryIcon maps an open-ended category label to a display icon key.
// Matching is by substring, not equality, because the upstream category
// vocabulary is open (e.g. "Fast Food Restaurant", "Boutique Hotel").
func CategoryIcon(category string) string {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "restaurant"), strings.Contains(c, "cafe"),
		strings.Contains(c, "coffee"), strings.Contains(c, "food"):
		return "utensils"
	case strings.Contains(c, "hotel"), strings.Contains(c, "lodg"),
		strings.Contains(c, "hostel"):
		return "bed"
	case strings.Contains(c, "hospital"), strings.Contains(c, "clinic"),
		strings.Contains(c, "pharmac"):
		return "stethoscope"
	case strings.Contains(c, "park"), strings.Contains(c, "garden"):
		return "tree"
	case strings.Contains(c, "museum"), strings.Contains(c, "gallery"),
		strings.Contains(c, "landmark"), strings.Contains(c, "monument"):
		return "landmark"
	default:
		return "map-pin"
	}
}
