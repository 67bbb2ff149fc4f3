package search

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/query"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/logger"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/metrics"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/rank"
)

// Default engine bounds; overridable via WithLimits / WithKeyTermCount.
const (
	DefaultLimit        = 10
	DefaultMaxLimit     = 100
	DefaultFetchLimit   = 500
	DefaultKeyTermCount = rank.DefaultKeyTermLimit
)

// Service sequences parsing, corpus filtering, optional TF-IDF re-ranking
// and result shaping. It is stateless: every ranking structure is built
// per call, so a Service is safe for concurrent use.
type Service struct {
	papers       PaperRepository
	defaultLimit int
	maxLimit     int
	fetchLimit   int
	keyTermCount int
}

// New creates a search service with default bounds.
func New(papers PaperRepository) *Service {
	return &Service{
		papers:       papers,
		defaultLimit: DefaultLimit,
		maxLimit:     DefaultMaxLimit,
		fetchLimit:   DefaultFetchLimit,
		keyTermCount: DefaultKeyTermCount,
	}
}

// WithLimits overrides the default, maximum and candidate-fetch limits.
func (s *Service) WithLimits(defaultLimit, maxLimit, fetchLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	if fetchLimit > 0 {
		s.fetchLimit = fetchLimit
	}
	return s
}

// WithKeyTermCount overrides how many key terms seed a "find similar"
// candidate filter.
func (s *Service) WithKeyTermCount(n int) *Service {
	if n > 0 {
		s.keyTermCount = n
	}
	return s
}

// Search runs an advanced search. Scalar filters are hard conjunctive
// constraints; the free-text query is parsed as a boolean expression when
// it uses operator or field syntax, and matched as one implicit
// cross-field term otherwise. Semantic mode re-ranks the filtered
// candidates with TF-IDF.
//
// Storage failures come back as domain.ErrSearchFailed; the cause is
// logged here and never reaches the client.
func (s *Service) Search(ctx context.Context, req domsearch.Request) ([]domain.Paper, error) {
	limit := s.clampLimit(req.Limit)

	crit := domsearch.Criteria{
		Expression:    s.parseQuery(req.Query),
		Category:      req.Category,
		YearCompleted: req.YearCompleted,
		SubjectArea:   req.SubjectArea,
		Author:        req.Author,
		Limit:         limit,
	}

	papers, err := s.papers.FindCandidates(ctx, crit)
	if err != nil {
		logger.FromContext(ctx).Error("corpus query failed",
			zap.String("query", req.Query), zap.Error(err))
		return nil, domain.ErrSearchFailed
	}

	mode := "filtered"
	if req.Semantic && strings.TrimSpace(req.Query) != "" {
		mode = "semantic"
		scored := rank.Score(req.Query, papers)
		papers = papers[:0]
		for _, sp := range scored {
			papers = append(papers, sp.Paper)
		}
	}
	metrics.SearchesTotal.WithLabelValues(mode).Inc()

	return papers, nil
}

// Similar returns the papers most similar to the one with the given ID:
// the source's key terms seed a candidate filter, and TF-IDF against the
// source text ranks the pool. A missing ID yields domain.ErrPaperNotFound.
func (s *Service) Similar(ctx context.Context, id string, limit int) ([]domain.Paper, error) {
	limit = s.clampLimit(limit)

	source, err := s.papers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPaperNotFound) {
			return nil, err
		}
		logger.FromContext(ctx).Error("paper lookup failed",
			zap.String("paper_id", id), zap.Error(err))
		return nil, domain.ErrSearchFailed
	}

	terms := rank.ExtractKeyTerms(source.Text(), s.keyTermCount)

	candidates, err := s.papers.FindSimilarCandidates(ctx, domsearch.SimilarCriteria{
		ExcludeID:   id,
		KeyTerms:    terms,
		SubjectArea: source.SubjectArea,
		Category:    source.Category,
		Limit:       s.fetchLimit,
	})
	if err != nil {
		logger.FromContext(ctx).Error("similar candidate query failed",
			zap.String("paper_id", id), zap.Error(err))
		return nil, domain.ErrSearchFailed
	}
	metrics.SimilarLookupsTotal.Inc()

	scored := rank.Score(source.Text(), candidates)
	papers := make([]domain.Paper, 0, limit)
	for _, sp := range scored {
		if len(papers) == limit {
			break
		}
		papers = append(papers, sp.Paper)
	}
	return papers, nil
}

// parseQuery maps a raw query string to a filter expression. Queries with
// boolean structure go through the parser; plain text becomes one
// implicit OR-across-fields substring term; empty text matches all.
func (s *Service) parseQuery(q string) query.Expression {
	q = strings.TrimSpace(q)
	switch {
	case q == "":
		return query.MatchAll()
	case query.HasStructure(q):
		return query.Parse(q)
	default:
		return query.NewExpression([]query.Condition{query.NewTerm(q)}, query.Or)
	}
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}
