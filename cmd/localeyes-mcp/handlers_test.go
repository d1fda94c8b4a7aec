package main

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/models"
)

type stubSearchService struct {
	search func(ctx context.Context, query models.SearchQuery) (*models.SearchLocationsOutput, error)
}

func (s *stubSearchService) SearchLocations(ctx context.Context, query models.SearchQuery) (*models.SearchLocationsOutput, error) {
	return s.search(ctx, query)
}

func (s *stubSearchService) Variant() models.OutputVariant { return models.VariantRich }

type stubDetailService struct {
	describe func(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error)
}

func (s *stubDetailService) GenerateDetailedDescription(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
	return s.describe(ctx, req)
}

func callToolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleSearchLocations_StaleCompletionIsDiscarded(t *testing.T) {
	slot := &common.RequestSlot{}
	service := &stubSearchService{
		search: func(ctx context.Context, query models.SearchQuery) (*models.SearchLocationsOutput, error) {
			// A newer search starts while this one is still in flight.
			slot.Begin()
			return &models.SearchLocationsOutput{
				Locations: []models.LocationSearchResult{{Name: "Old Result", Category: "cafe", Address: "1 Main St", ImageURL: "x"}},
				Variant:   models.VariantRich,
			}, nil
		},
	}

	handler := handleSearchLocations(service, slot, common.GetLogger())
	result, err := handler(context.Background(), callToolRequest(map[string]any{"query": "coffee"}))
	require.NoError(t, err)
	assert.Equal(t, "Superseded by a newer search.", resultText(t, result))
}

func TestHandleSearchLocations_CurrentCompletionIsReturned(t *testing.T) {
	slot := &common.RequestSlot{}
	service := &stubSearchService{
		search: func(ctx context.Context, query models.SearchQuery) (*models.SearchLocationsOutput, error) {
			return &models.SearchLocationsOutput{
				Locations: []models.LocationSearchResult{{Name: "Blue Bottle", Category: "cafe", Address: "1 Main St", ImageURL: "x"}},
				Variant:   models.VariantRich,
			}, nil
		},
	}

	handler := handleSearchLocations(service, slot, common.GetLogger())
	result, err := handler(context.Background(), callToolRequest(map[string]any{"query": "coffee"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Blue Bottle")
}

func TestHandleDescribeLocation_StaleCompletionIsDiscarded(t *testing.T) {
	slot := &common.RequestSlot{}
	service := &stubDetailService{
		describe: func(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
			// The user selects a different location mid-generation.
			slot.Begin()
			return &models.DetailResponse{DetailedDescription: "stale prose"}, nil
		},
	}

	handler := handleDescribeLocation(service, slot, common.GetLogger())
	result, err := handler(context.Background(), callToolRequest(map[string]any{
		"name":    "Blue Bottle",
		"type":    "cafe",
		"address": "1 Main St",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Superseded by a newer selection.", resultText(t, result))
}

func TestHandleDescribeLocation_CurrentCompletionIsReturned(t *testing.T) {
	slot := &common.RequestSlot{}
	service := &stubDetailService{
		describe: func(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
			return &models.DetailResponse{DetailedDescription: "A beloved neighborhood cafe."}, nil
		},
	}

	handler := handleDescribeLocation(service, slot, common.GetLogger())
	result, err := handler(context.Background(), callToolRequest(map[string]any{
		"name":    "Blue Bottle",
		"type":    "cafe",
		"address": "1 Main St",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "A beloved neighborhood cafe.")
}
