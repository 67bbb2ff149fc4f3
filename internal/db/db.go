package db

import (
	"context"
	"time"
)

// Store is the storage facade shared with the surrounding repository
// application. The search engine only reads papers and interactions; its
// single write is the search-audit event.
type Store interface {
	Pinger
	HashStore
	ListStore
	SetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based read operations over paper records.
type HashStore interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// ListStore provides list operations over the interaction log and the
// search-audit trail.
type ListStore interface {
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	RPush(ctx context.Context, key string, values ...string) error
	LTrim(ctx context.Context, key string, start, stop int64) error
}

// SetStore provides set operations over the bookmarks store.
type SetStore interface {
	SMembers(ctx context.Context, key string) ([]string, error)
}
