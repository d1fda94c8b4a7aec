package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/services/detail"
	"github.com/ternarybob/localeyes/internal/services/llm"
	"github.com/ternarybob/localeyes/internal/services/places"
	"github.com/ternarybob/localeyes/internal/services/search"
	"github.com/ternarybob/localeyes/internal/services/transcribe"
)

func main() {
	configPath := os.Getenv("LOCALEYES_CONFIG")
	if configPath == "" {
		configPath = "localeyes.toml"
	}
	if _, err := os.Stat(configPath); err != nil {
		// Defaults plus environment variables are enough to run.
		configPath = ""
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	provider := llm.NewFactory(&config.Gemini, &config.Claude, &config.LLM, logger)
	defer provider.Close()

	placesService := places.NewService(&config.Places, logger)

	searchService, err := search.NewService(&config.Search, provider, placesService, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize search service")
	}
	detailService := detail.NewService(provider, logger)
	transcribeService := transcribe.NewService(&config.Transcribe, provider, logger)

	mcpServer := server.NewMCPServer(
		"localeyes",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Rapid successive searches (voice input) and re-selections race;
	// each slot applies only its latest request's completion.
	searchSlot := &common.RequestSlot{}
	describeSlot := &common.RequestSlot{}
	mcpServer.AddTool(createSearchLocationsTool(), handleSearchLocations(searchService, searchSlot, logger))
	mcpServer.AddTool(createDescribeLocationTool(), handleDescribeLocation(detailService, describeSlot, logger))
	mcpServer.AddTool(createExtractTextTool(), handleExtractText(transcribeService, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
