package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ternarybob/localeyes/internal/models"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	Storage     StorageConfig    `toml:"storage"`
	Places      PlacesConfig     `toml:"places"`
	Gemini      GeminiConfig     `toml:"gemini"`
	Claude      ClaudeConfig     `toml:"claude"`
	LLM         LLMConfig        `toml:"llm"`
	Search      SearchConfig     `toml:"search"`
	Transcribe  TranscribeConfig `toml:"transcribe"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration for the
// search-history store.
type BadgerConfig struct {
	Path           string `toml:"path"`
	ResetOnStartup bool   `toml:"reset_on_startup"`
}

// PlacesConfig contains the Foursquare places-search API configuration.
type PlacesConfig struct {
	APIKey         string        `toml:"api_key"`         // overridden by FOURSQUARE_API_KEY
	BaseURL        string        `toml:"base_url"`        // search endpoint
	DefaultLimit   int           `toml:"default_limit"`   // max results per search
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP client timeout
	RateLimit      time.Duration `toml:"rate_limit"`      // minimum spacing between API calls
}

// GeminiConfig contains Google Gemini API configuration.
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"` // overridden by GEMINI_API_KEY
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	Timeout     string  `toml:"timeout"`
}

// ClaudeConfig contains Anthropic Claude API configuration.
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"` // overridden by ANTHROPIC_API_KEY
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

// LLM provider names for LLMConfig.DefaultProvider.
const (
	LLMProviderGemini = "gemini"
	LLMProviderClaude = "claude"
)

// LLMConfig selects the completion backend used by the AI flows.
type LLMConfig struct {
	DefaultProvider string `toml:"default_provider"` // "gemini" or "claude"
}

// SearchConfig configures the location-search orchestration.
type SearchConfig struct {
	// OutputVariant selects the orchestration output schema:
	// "rich" (default), "labelsOnly" or "basicFields".
	OutputVariant string `toml:"output_variant"`

	// MaxToolRounds bounds the tool-calling loop per search.
	MaxToolRounds int `toml:"max_tool_rounds"`
}

// TranscribeConfig configures the image-to-text flow.
type TranscribeConfig struct {
	// MaxImageBytes bounds the decoded image payload size.
	MaxImageBytes int `toml:"max_image_bytes"`
}

// NewDefaultConfig returns a config populated with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/localeyes",
			},
		},
		Places: PlacesConfig{
			BaseURL:        "https://api.foursquare.com/v3/places/search",
			DefaultLimit:   20,
			RequestTimeout: 30 * time.Second,
			RateLimit:      200 * time.Millisecond,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Temperature: 0.7,
			MaxTokens:   8192,
			Timeout:     "2m",
		},
		Claude: ClaudeConfig{
			Model:       "claude-sonnet-4-20250514",
			Temperature: 0.7,
			MaxTokens:   8192,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderGemini,
		},
		Search: SearchConfig{
			OutputVariant: string(models.VariantRich),
			MaxToolRounds: 4,
		},
		Transcribe: TranscribeConfig{
			MaxImageBytes: 10 * 1024 * 1024,
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files. Later files
// override earlier ones; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("LOCALEYES_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("LOCALEYES_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("LOCALEYES_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if level := os.Getenv("LOCALEYES_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("LOCALEYES_LOG_OUTPUT"); output != "" {
		config.Logging.Output = splitString(output, ",")
	}

	if path := os.Getenv("LOCALEYES_BADGER_PATH"); path != "" {
		config.Storage.Badger.Path = path
	}

	if variant := os.Getenv("LOCALEYES_SEARCH_OUTPUT_VARIANT"); variant != "" {
		config.Search.OutputVariant = variant
	}
	if provider := os.Getenv("LOCALEYES_LLM_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = provider
	}

	// API keys follow the upstream vendors' conventional variable names.
	if key := os.Getenv("FOURSQUARE_API_KEY"); key != "" {
		config.Places.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.Claude.APIKey = key
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// ResolveAPIKey returns the first non-empty candidate or a
// ConfigurationError naming the missing setting.
func ResolveAPIKey(name string, candidates ...string) (string, error) {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c, nil
		}
	}
	return "", &models.ConfigurationError{Setting: name}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "production" || env == "prod"
}

// splitString splits a string by separator and trims whitespace
func splitString(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
