package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

// maxAuditEvents caps the search-audit trail; older events are trimmed.
const maxAuditEvents = 10000

// store is the consumer interface for interaction data (ISP).
type store interface {
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	RPush(ctx context.Context, key string, values ...string) error
	LTrim(ctx context.Context, key string, start, stop int64) error
}

// Repo reads the per-user interaction log and bookmarks store, and
// records search-audit events. View events and bookmarks are written by
// the surrounding repository application.
type Repo struct {
	store store
}

// New creates an interaction repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// viewEvent is the wire format of a single view-log entry.
type viewEvent struct {
	PaperID  string `json:"paper_id"`
	ViewedAt string `json:"viewed_at"`
}

// searchEvent is the wire format of a search-audit entry.
type searchEvent struct {
	UserID      string `json:"user_id"`
	Query       string `json:"query"`
	ResultCount int    `json:"result_count"`
	Timestamp   string `json:"timestamp"`
}

// RecentViews returns the user's most recent view interactions, most
// recent first, scanning at most window log events. Malformed log entries
// are skipped.
func (r *Repo) RecentViews(ctx context.Context, userID string, window int) ([]domain.InteractionRecord, error) {
	if window <= 0 {
		return nil, nil
	}
	raw, err := r.store.LRange(ctx, viewsKey(userID), int64(-window), -1)
	if err != nil {
		return nil, fmt.Errorf("lrange views %s: %w", userID, err)
	}

	records := make([]domain.InteractionRecord, 0, len(raw))
	// the log is appended chronologically; walk backwards for most-recent-first
	for i := len(raw) - 1; i >= 0; i-- {
		var ev viewEvent
		if err := json.Unmarshal([]byte(raw[i]), &ev); err != nil || ev.PaperID == "" {
			continue
		}
		rec := domain.InteractionRecord{
			UserID:  userID,
			PaperID: ev.PaperID,
			Kind:    domain.InteractionViewed,
		}
		if t, err := time.Parse(time.RFC3339, ev.ViewedAt); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, nil
}

// RecentViewedPaperIDs returns the distinct paper IDs from the user's most
// recent view events, most recent first.
func (r *Repo) RecentViewedPaperIDs(ctx context.Context, userID string, window int) ([]string, error) {
	records, err := r.RecentViews(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.PaperID]; dup {
			continue
		}
		seen[rec.PaperID] = struct{}{}
		ids = append(ids, rec.PaperID)
	}
	return ids, nil
}

// BookmarkedPaperIDs returns the user's bookmarked paper IDs.
func (r *Repo) BookmarkedPaperIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.store.SMembers(ctx, bookmarksKey(userID))
	if err != nil {
		return nil, fmt.Errorf("smembers bookmarks %s: %w", userID, err)
	}
	return ids, nil
}

// RecordSearch appends one audit event for a completed advanced search and
// trims the trail to its cap.
func (r *Repo) RecordSearch(ctx context.Context, userID, rawQuery string, resultCount int) error {
	data, err := json.Marshal(searchEvent{
		UserID:      userID,
		Query:       rawQuery,
		ResultCount: resultCount,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal search event: %w", err)
	}
	if err := r.store.RPush(ctx, auditKey(), string(data)); err != nil {
		return fmt.Errorf("rpush audit: %w", err)
	}
	if err := r.store.LTrim(ctx, auditKey(), -maxAuditEvents, -1); err != nil {
		return fmt.Errorf("ltrim audit: %w", err)
	}
	return nil
}

func viewsKey(userID string) string {
	return domain.KeyPrefix + "user:" + userID + ":views"
}

func bookmarksKey(userID string) string {
	return domain.KeyPrefix + "user:" + userID + ":bookmarks"
}

func auditKey() string {
	return domain.KeyPrefix + "audit:search"
}
