package paper

import (
	"context"
	"fmt"
	"sort"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
)

// store is the consumer interface for paper records (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo reads the paper corpus from the shared store. It issues no writes.
type Repo struct {
	store store
}

// New creates a paper repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get returns a paper by ID.
func (r *Repo) Get(ctx context.Context, id string) (domain.Paper, error) {
	m, err := r.store.HGetAll(ctx, paperKey(id))
	if err != nil {
		return domain.Paper{}, fmt.Errorf("hgetall %s: %w", paperKey(id), err)
	}
	if len(m) == 0 {
		return domain.Paper{}, domain.ErrPaperNotFound
	}
	return paperFromHash(id, m), nil
}

// ByIDs returns the papers for the given IDs, skipping missing ones.
// Order follows the input IDs.
func (r *Repo) ByIDs(ctx context.Context, ids []string) ([]domain.Paper, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = paperKey(id)
	}
	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}
	papers := make([]domain.Paper, 0, len(rows))
	for i, m := range rows {
		if len(m) == 0 {
			continue
		}
		papers = append(papers, paperFromHash(ids[i], m))
	}
	return papers, nil
}

// ListApproved returns approved papers, most recent first, bounded by
// limit (0 = all).
func (r *Repo) ListApproved(ctx context.Context, limit int) ([]domain.Paper, error) {
	papers, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := papers[:0]
	for _, p := range papers {
		if p.Searchable() {
			out = append(out, p)
		}
	}
	return bound(out, limit), nil
}

// FindCandidates returns approved papers matching the criteria, most
// recent first, bounded by Limit.
func (r *Repo) FindCandidates(ctx context.Context, c domsearch.Criteria) ([]domain.Paper, error) {
	papers, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := papers[:0]
	for i := range papers {
		if matchesCriteria(&papers[i], c) {
			out = append(out, papers[i])
		}
	}
	return bound(out, c.Limit), nil
}

// FindSimilarCandidates returns the candidate pool for "find similar",
// most recent first, bounded by Limit.
func (r *Repo) FindSimilarCandidates(ctx context.Context, c domsearch.SimilarCriteria) ([]domain.Paper, error) {
	papers, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := papers[:0]
	for i := range papers {
		if matchesSimilar(&papers[i], c) {
			out = append(out, papers[i])
		}
	}
	return bound(out, c.Limit), nil
}

// loadAll scans the paper keyspace and hydrates every record in one
// pipelined round-trip, most recent first. The corpus is a few thousand
// papers at most, so a full scan per request stays cheap and avoids any
// index to keep consistent.
func (r *Repo) loadAll(ctx context.Context) ([]domain.Paper, error) {
	keys, err := r.store.Scan(ctx, paperKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan papers: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys) // SCAN order is unspecified

	rows, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}

	papers := make([]domain.Paper, 0, len(rows))
	for i, m := range rows {
		if len(m) == 0 {
			continue
		}
		papers = append(papers, paperFromHash(idFromKey(keys[i]), m))
	}

	sort.SliceStable(papers, func(i, j int) bool {
		return papers[i].CreatedAt.After(papers[j].CreatedAt)
	})
	return papers, nil
}

func bound(papers []domain.Paper, limit int) []domain.Paper {
	if limit > 0 && len(papers) > limit {
		return papers[:limit]
	}
	return papers
}
