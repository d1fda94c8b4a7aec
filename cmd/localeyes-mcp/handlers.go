package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

func toolError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
	}
}

// handleSearchLocations implements the search_locations tool
func handleSearchLocations(searchService interfaces.LocationSearchService, slot *common.RequestSlot, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return toolError("Error: query parameter is required"), nil
		}

		seq := slot.Begin()
		output, err := searchService.SearchLocations(ctx, models.SearchQuery{
			Query:        query,
			UserLocation: request.GetString("user_location", ""),
			Language:     request.GetString("language", ""),
			MinRating:    request.GetBool("min_rating", false),
		})
		if err != nil {
			logger.Error().Err(err).Msg("Location search failed")
			return toolError(fmt.Sprintf("Search error: %v", err)), nil
		}
		if !slot.Current(seq) {
			return toolError("Superseded by a newer search."), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatSearchOutput(query, output)),
			},
		}, nil
	}
}

// handleDescribeLocation implements the describe_location tool
func handleDescribeLocation(detailService interfaces.DetailService, slot *common.RequestSlot, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil || name == "" {
			return toolError("Error: name parameter is required"), nil
		}
		locationType, err := request.RequireString("type")
		if err != nil || locationType == "" {
			return toolError("Error: type parameter is required"), nil
		}
		address, err := request.RequireString("address")
		if err != nil || address == "" {
			return toolError("Error: address parameter is required"), nil
		}

		seq := slot.Begin()
		resp, err := detailService.GenerateDetailedDescription(ctx, models.DetailRequest{
			LocationName:    name,
			LocationType:    locationType,
			LocationAddress: address,
			AdditionalInfo:  request.GetString("additional_info", ""),
		})
		if err != nil {
			logger.Error().Err(err).Str("location", name).Msg("Description generation failed")
			return toolError(fmt.Sprintf("Description error: %v", err)), nil
		}
		if !slot.Current(seq) {
			return toolError("Superseded by a newer selection."), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(formatDescription(name, address, resp)),
			},
		}, nil
	}
}

// handleExtractText implements the extract_text tool
func handleExtractText(transcriptionService interfaces.TranscriptionService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dataURI, err := request.RequireString("photo_data_uri")
		if err != nil || dataURI == "" {
			return toolError("Error: photo_data_uri parameter is required"), nil
		}

		resp, err := transcriptionService.ImageToText(ctx, models.TranscriptionRequest{
			PhotoDataURI: dataURI,
		})
		if err != nil {
			logger.Error().Err(err).Msg("Text extraction failed")
			return toolError(fmt.Sprintf("Extraction error: %v", err)), nil
		}

		if resp.ExtractedText == "" {
			return toolError("No text found in the image."), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(resp.ExtractedText),
			},
		}, nil
	}
}
