package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/localeyes/internal/common"
	"github.com/ternarybob/localeyes/internal/handlers"
	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/services/detail"
	"github.com/ternarybob/localeyes/internal/services/llm"
	"github.com/ternarybob/localeyes/internal/services/places"
	"github.com/ternarybob/localeyes/internal/services/search"
	"github.com/ternarybob/localeyes/internal/services/transcribe"
	"github.com/ternarybob/localeyes/internal/storage/badger"
)

// App wires configuration, storage, services and handlers together.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	DB       *badger.BadgerDB
	Provider *llm.Factory

	PlacesService        interfaces.PlacesService
	SearchService        interfaces.LocationSearchService
	DetailService        interfaces.DetailService
	TranscriptionService interfaces.TranscriptionService
	HistoryStore         interfaces.HistoryStore

	SearchHandler     *handlers.SearchHandler
	DetailHandler     *handlers.DetailHandler
	TranscribeHandler *handlers.TranscribeHandler
	HistoryHandler    *handlers.HistoryHandler
	StatusHandler     *handlers.StatusHandler
}

// New creates the application with all dependencies wired.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	db, err := badger.NewBadgerDB(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.DB = db
	a.HistoryStore = badger.NewHistoryStorage(db, logger)

	a.Provider = llm.NewFactory(&cfg.Gemini, &cfg.Claude, &cfg.LLM, logger)
	a.PlacesService = places.NewService(&cfg.Places, logger)

	searchService, err := search.NewService(&cfg.Search, a.Provider, a.PlacesService, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize search service: %w", err)
	}
	a.SearchService = searchService
	a.DetailService = detail.NewService(a.Provider, logger)
	a.TranscriptionService = transcribe.NewService(&cfg.Transcribe, a.Provider, logger)

	a.SearchHandler = handlers.NewSearchHandler(a.SearchService, a.HistoryStore, logger)
	a.DetailHandler = handlers.NewDetailHandler(a.DetailService, logger)
	a.TranscribeHandler = handlers.NewTranscribeHandler(a.TranscriptionService, logger)
	a.HistoryHandler = handlers.NewHistoryHandler(a.HistoryStore, logger)
	a.StatusHandler = handlers.NewStatusHandler(cfg, a.SearchService, logger)

	logger.Info().
		Str("provider", cfg.LLM.DefaultProvider).
		Str("output_variant", string(a.SearchService.Variant())).
		Msg("Application initialized")

	return a, nil
}

// Close releases application resources.
func (a *App) Close() error {
	if a.Provider != nil {
		if err := a.Provider.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close provider clients")
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	return nil
}
