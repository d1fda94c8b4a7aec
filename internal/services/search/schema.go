package search

// Output schemas for the three search-contract variants, declared as plain
// maps so the same declaration serves structured output and prompt text.

// locationItemSchema is the full normalized location shape.
func locationItemSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"name", "category", "address", "imageUrl"},
		"properties": map[string]interface{}{
			"name":     map[string]interface{}{"type": "string", "description": "The name of the location."},
			"category": map[string]interface{}{"type": "string", "description": "A category for the location (e.g., restaurant, park, museum)."},
			"address":  map[string]interface{}{"type": "string", "description": "The full address of the location."},
			"imageUrl": map[string]interface{}{"type": "string", "description": "A URL to an image of the location."},
			"lat":      map[string]interface{}{"type": "number", "description": "The latitude of the location."},
			"lng":      map[string]interface{}{"type": "number", "description": "The longitude of the location."},
			"rating":   map[string]interface{}{"type": "number", "description": "The rating of the location, from 0 to 10."},
			"hours":    map[string]interface{}{"type": "string", "description": "The hours of operation for the location (e.g., \"Open\", \"Closed\", \"Open 24 hours\")."},
			"website":  map[string]interface{}{"type": "string", "description": "The website of the location."},
		},
	}
}

// richOutputSchema is the default output contract.
func richOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"locations"},
		"properties": map[string]interface{}{
			"locations": map[string]interface{}{
				"type":        "array",
				"description": "A list of nearby locations matching the query.",
				"items":       locationItemSchema(),
			},
		},
	}
}

// basicFieldsOutputSchema is the reduced legacy contract: no coordinates,
// rating, hours or website.
func basicFieldsOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"locations"},
		"properties": map[string]interface{}{
			"locations": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type":     "object",
					"required": []string{"name", "category", "address", "imageUrl"},
					"properties": map[string]interface{}{
						"name":     map[string]interface{}{"type": "string"},
						"category": map[string]interface{}{"type": "string"},
						"address":  map[string]interface{}{"type": "string"},
						"imageUrl": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	}
}

// labelsOnlyOutputSchema is the earliest legacy contract: bare place names.
func labelsOnlyOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"locations"},
		"properties": map[string]interface{}{
			"locations": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
		},
	}
}

// searchToolParametersSchema declares the arguments the backend may choose
// for the places search tool.
func searchToolParametersSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
		"properties": map[string]interface{}{
			"query":  map[string]interface{}{"type": "string"},
			"ll":     map[string]interface{}{"type": "string", "description": "The user's location as 'latitude,longitude'."},
			"radius": map[string]interface{}{"type": "number", "description": "Radius in meters to search within. This is a hard requirement."},
			"fields": map[string]interface{}{"type": "string", "description": "Fields to include in the response, comma-separated (e.g., \"fsq_id,name,rating,hours,website\")."},
		},
	}
}
