package recommend

import (
	"context"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

// PaperReader reads papers for profile building and candidate pooling.
type PaperReader interface {
	ByIDs(ctx context.Context, ids []string) ([]domain.Paper, error)
	ListApproved(ctx context.Context, limit int) ([]domain.Paper, error)
}

// InteractionReader reads a user's interaction history: recent view
// events from the audit log and bookmarks from the bookmarks store.
type InteractionReader interface {
	RecentViewedPaperIDs(ctx context.Context, userID string, window int) ([]string, error)
	BookmarkedPaperIDs(ctx context.Context, userID string) ([]string, error)
}
