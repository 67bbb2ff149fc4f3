package search

import (
	"context"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
)

// PaperRepository defines the corpus access contract for search
// operations. The repository only needs equality/substring matching over
// stored papers; ranking happens here.
type PaperRepository interface {
	Get(ctx context.Context, id string) (domain.Paper, error)
	FindCandidates(ctx context.Context, c domsearch.Criteria) ([]domain.Paper, error)
	FindSimilarCandidates(ctx context.Context, c domsearch.SimilarCriteria) ([]domain.Paper, error)
}
