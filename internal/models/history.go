package models

import "time"

// MaxHistoryEntries bounds the per-client search history.
const MaxHistoryEntries = 5

// HistoryEntry is one remembered search query. Entries are ordered
// most-recent-first and de-duplicated by moving an existing query to the
// front rather than inserting a second copy.
type HistoryEntry struct {
	ID        string    `json:"id" badgerhold:"key"`
	ClientID  string    `json:"clientId" badgerhold:"index"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}
