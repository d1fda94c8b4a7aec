package main

import (
	"fmt"
	"strings"

	"github.com/ternarybob/localeyes/internal/models"
)

// formatSearchOutput formats search results as markdown
func formatSearchOutput(query string, output *models.SearchLocationsOutput) string {
	var sb strings.Builder

	if output.Variant == models.VariantLabelsOnly {
		sb.WriteString(fmt.Sprintf("## Places matching \"%s\" (%d results)\n\n", query, len(output.Labels)))
		if len(output.Labels) == 0 {
			sb.WriteString("No results found.\n")
			return sb.String()
		}
		for _, label := range output.Labels {
			sb.WriteString(fmt.Sprintf("- %s\n", label))
		}
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("## Places matching \"%s\" (%d results)\n\n", query, len(output.Locations)))
	if len(output.Locations) == 0 {
		sb.WriteString("No results found.\n")
		return sb.String()
	}

	for i, loc := range output.Locations {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, loc.Name))
		sb.WriteString(fmt.Sprintf("**Category:** %s\n", loc.Category))
		sb.WriteString(fmt.Sprintf("**Address:** %s\n", loc.Address))
		if loc.Rating != nil {
			sb.WriteString(fmt.Sprintf("**Rating:** %.1f/5\n", models.DisplayRating(*loc.Rating)))
		}
		if loc.Hours != nil {
			sb.WriteString(fmt.Sprintf("**Hours:** %s\n", *loc.Hours))
		}
		if loc.Website != nil {
			sb.WriteString(fmt.Sprintf("**Website:** %s\n", *loc.Website))
		}
		if loc.Lat != nil && loc.Lng != nil {
			sb.WriteString(fmt.Sprintf("**Coordinates:** %.4f,%.4f\n", *loc.Lat, *loc.Lng))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatDescription formats a generated description as markdown
func formatDescription(name, address string, resp *models.DetailResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", name))
	sb.WriteString(fmt.Sprintf("**Address:** %s\n\n", address))
	sb.WriteString(resp.DetailedDescription)
	sb.WriteString("\n")
	return sb.String()
}
