package interfaces

import "context"

// HistoryStore keeps the bounded, de-duplicated, most-recent-first list of
// search queries per client. Adding a query that already exists moves it
// to the front rather than inserting a second copy.
type HistoryStore interface {
	Add(ctx context.Context, clientID, query string) error
	List(ctx context.Context, clientID string) ([]string, error)
	Clear(ctx context.Context, clientID string) error
	Close() error
}
