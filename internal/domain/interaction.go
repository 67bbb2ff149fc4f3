package domain

import "time"

// InteractionKind distinguishes view events from bookmarks.
type InteractionKind string

// Interaction kinds sourced from the audit log and the bookmarks store.
const (
	InteractionViewed     InteractionKind = "viewed"
	InteractionBookmarked InteractionKind = "bookmarked"
)

// InteractionRecord is a single user-paper interaction. Read-only input to
// the recommendation engine.
type InteractionRecord struct {
	UserID    string
	PaperID   string
	Kind      InteractionKind
	Timestamp time.Time
}
