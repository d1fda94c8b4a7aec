package badger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/localeyes/internal/interfaces"
	"github.com/ternarybob/localeyes/internal/models"
)

// HistoryStorage keeps the bounded, most-recent-first search history per
// client. Re-searching a remembered query moves it to the front instead of
// duplicating it; the list never exceeds models.MaxHistoryEntries.
type HistoryStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
	mu     sync.Mutex
}

// NewHistoryStorage creates a new HistoryStorage instance
func NewHistoryStorage(db *BadgerDB, logger arbor.ILogger) interfaces.HistoryStore {
	return &HistoryStorage{
		db:     db,
		logger: logger,
	}
}

// Add records a query for a client, de-duplicating and trimming to the cap.
func (s *HistoryStorage) Add(ctx context.Context, clientID, query string) error {
	query = strings.TrimSpace(query)
	if clientID == "" || query == "" {
		return fmt.Errorf("client ID and query are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Move-to-front: drop any existing copy of this query first.
	if err := s.db.Store().DeleteMatching(&models.HistoryEntry{},
		badgerhold.Where("ClientID").Eq(clientID).And("Query").Eq(query)); err != nil {
		return fmt.Errorf("failed to de-duplicate history: %w", err)
	}

	entry := &models.HistoryEntry{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Query:     query,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Store().Insert(entry.ID, entry); err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return s.trim(clientID)
}

// trim removes the oldest entries beyond the cap.
func (s *HistoryStorage) trim(clientID string) error {
	var entries []models.HistoryEntry
	if err := s.db.Store().Find(&entries,
		badgerhold.Where("ClientID").Eq(clientID).SortBy("CreatedAt").Reverse()); err != nil {
		return fmt.Errorf("failed to load history for trim: %w", err)
	}

	for i := models.MaxHistoryEntries; i < len(entries); i++ {
		if err := s.db.Store().Delete(entries[i].ID, &models.HistoryEntry{}); err != nil {
			return fmt.Errorf("failed to trim history entry: %w", err)
		}
	}
	return nil
}

// List returns a client's remembered queries, most recent first.
func (s *HistoryStorage) List(ctx context.Context, clientID string) ([]string, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client ID is required")
	}

	var entries []models.HistoryEntry
	if err := s.db.Store().Find(&entries,
		badgerhold.Where("ClientID").Eq(clientID).
			SortBy("CreatedAt").Reverse().
			Limit(models.MaxHistoryEntries)); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	queries := make([]string, 0, len(entries))
	for _, e := range entries {
		queries = append(queries, e.Query)
	}
	return queries, nil
}

// Clear removes all remembered queries for a client.
func (s *HistoryStorage) Clear(ctx context.Context, clientID string) error {
	if clientID == "" {
		return fmt.Errorf("client ID is required")
	}

	if err := s.db.Store().DeleteMatching(&models.HistoryEntry{},
		badgerhold.Where("ClientID").Eq(clientID)); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close is a no-op; the shared connection is closed by its owner.
func (s *HistoryStorage) Close() error {
	return nil
}
