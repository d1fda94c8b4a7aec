package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createSearchLocationsTool returns the search_locations tool definition
func createSearchLocationsTool() mcp.Tool {
	return mcp.NewTool("search_locations",
		mcp.WithDescription("Search for nearby places with an AI-orchestrated Foursquare lookup"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search query (e.g. \"best coffee near the station\")"),
		),
		mcp.WithString("user_location",
			mcp.Description("User coordinates as 'latitude,longitude'; constrains results to a 5km radius"),
		),
		mcp.WithString("language",
			mcp.Description("Language hint for interpreting the query"),
		),
		mcp.WithBoolean("min_rating",
			mcp.Description("Bias results toward places rated 4 stars or higher"),
		),
	)
}

// createDescribeLocationTool returns the describe_location tool definition
func createDescribeLocationTool() mcp.Tool {
	return mcp.NewTool("describe_location",
		mcp.WithDescription("Generate a detailed description of a specific place"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the location"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("The category of the location (e.g. restaurant, hotel, museum)"),
		),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("The full address of the location"),
		),
		mcp.WithString("additional_info",
			mcp.Description("Extra context, such as rating or hours"),
		),
	)
}

// createExtractTextTool returns the extract_text tool definition
func createExtractTextTool() mcp.Tool {
	return mcp.NewTool("extract_text",
		mcp.WithDescription("Extract text from an image (OCR)"),
		mcp.WithString("photo_data_uri",
			mcp.Required(),
			mcp.Description("Image as a data URI: 'data:<mimetype>;base64,<encoded_data>'"),
		),
	)
}
