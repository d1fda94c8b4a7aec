package search

import (
	"fmt"
	"strings"

	"github.com/ternarybob/localeyes/internal/models"
)

// ratingBiasSuffix is appended to the query when the caller asks for
// highly-rated results only.
const ratingBiasSuffix = " with a rating of 4 stars or higher"

const richPromptInstructions = `You are a helpful assistant that provides a list of nearby, high-quality locations based on the user's query. Your goal is to find the best and most convenient options for the user.

Use the searchFoursquare tool to find locations. You MUST request the fsq_id, name, categories, location, geocodes, rating, hours, and website fields.`

const richPromptGuidance = `Provide a list of locations that match the user's query. The locations should be as specific as possible.
When interpreting the query, assume the user is looking for the best quality options available (e.g., top-rated, popular).
For each location, provide its name, a category, its full address, its latitude and longitude, a placeholder image URL from placehold.co, its rating, hours, and website if available.
You MUST prioritize locations that are physically near the user's provided location. When the user's location is available, you MUST use a search radius of 5000 meters. This is a hard requirement. Do not search outside this radius.
Consider the language of the user query when searching for locations.
If the user location is not provided, use a general location based on the query.`

const richPromptExample = `Example Output:
{
  "locations": [
    {
      "name": "The Statue of Liberty",
      "category": "Landmark",
      "address": "New York, NY 10004, USA",
      "imageUrl": "https://placehold.co/600x400.png",
      "lat": 40.6892,
      "lng": -74.0445,
      "rating": 9.0,
      "hours": "Open",
      "website": "https://www.nps.gov/stli/index.htm"
    }
  ]
}`

// jsonOnlyInstruction rides in the prompt for the rich variant because the
// tool binding precludes a structured-output schema on the request.
const jsonOnlyInstruction = `Respond with a single JSON object only. Do not wrap it in markdown fences and do not add commentary outside the JSON.`

// buildSearchPrompt assembles the orchestration prompt for a variant.
func buildSearchPrompt(variant models.OutputVariant, query models.SearchQuery) string {
	var b strings.Builder

	switch variant {
	case models.VariantLabelsOnly:
		b.WriteString("You are a helpful AI assistant designed to find locations based on user input.\n\n")
		b.WriteString("Return a JSON object with a \"locations\" array of place-name strings matching the query.\n\n")
	case models.VariantBasicFields:
		b.WriteString("You are a helpful assistant that provides a list of nearby locations based on the user's query.\n\n")
		b.WriteString("Return a JSON object with a \"locations\" array. For each location provide its name, a category, its full address, and a placeholder image URL from placehold.co.\n\n")
	default:
		b.WriteString(richPromptInstructions)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "User Query: %s\n", effectiveQuery(query))
	if query.UserLocation != "" {
		fmt.Fprintf(&b, "User Location: %s\n", query.UserLocation)
	}
	if query.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", query.Language)
	}
	b.WriteString("\n")

	if variant == models.VariantRich {
		b.WriteString(richPromptGuidance)
		b.WriteString("\n\n")
		b.WriteString(richPromptExample)
		b.WriteString("\n\n")
		b.WriteString(jsonOnlyInstruction)
	}

	return b.String()
}

// effectiveQuery applies the rating bias to the raw query text.
func effectiveQuery(query models.SearchQuery) string {
	if query.MinRating {
		return query.Query + ratingBiasSuffix
	}
	return query.Query
}
