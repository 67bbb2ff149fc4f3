package recommend

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/logger"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/metrics"
)

// Default engine bounds; overridable via the With* options.
const (
	DefaultLimit             = 10
	DefaultMaxLimit          = 100
	DefaultViewHistoryWindow = 50
	DefaultTopKeywordCount   = 10
)

// Service ranks un-interacted papers by affinity to an implicit interest
// profile built from the user's views and bookmarks, falling back to
// popularity for cold-start users. Profiles are request-local and never
// persisted.
type Service struct {
	papers       PaperReader
	interactions InteractionReader
	defaultLimit int
	maxLimit     int
	window       int
	topKeywords  int
}

// New creates a recommendation service with default bounds.
func New(papers PaperReader, interactions InteractionReader) *Service {
	return &Service{
		papers:       papers,
		interactions: interactions,
		defaultLimit: DefaultLimit,
		maxLimit:     DefaultMaxLimit,
		window:       DefaultViewHistoryWindow,
		topKeywords:  DefaultTopKeywordCount,
	}
}

// WithLimits overrides the default and maximum result limits.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// WithViewHistoryWindow overrides how many recent view events feed the
// interest profile.
func (s *Service) WithViewHistoryWindow(n int) *Service {
	if n > 0 {
		s.window = n
	}
	return s
}

// WithTopKeywordCount overrides how many keywords an interest profile
// keeps.
func (s *Service) WithTopKeywordCount(n int) *Service {
	if n > 0 {
		s.topKeywords = n
	}
	return s
}

// profile is the ephemeral interest model for one request.
type profile struct {
	keywords []string            // top keywords by frequency
	subjects map[string]struct{} // lowercased subject areas
}

// Recommend returns up to limit approved papers for the user. Interaction
// log failures degrade to the popularity fallback rather than failing the
// request; a corpus failure yields domain.ErrRecommendationFailed with
// the cause logged server-side.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) ([]domain.Paper, error) {
	limit = s.clampLimit(limit)
	log := logger.FromContext(ctx)

	interacted := s.interactedIDs(ctx, userID, log)

	if len(interacted) == 0 {
		metrics.RecommendationsTotal.WithLabelValues("cold").Inc()
		return s.popular(ctx, limit, log)
	}

	seeds, err := s.papers.ByIDs(ctx, interacted)
	if err != nil {
		log.Error("interacted paper lookup failed",
			zap.String("user_id", userID), zap.Error(err))
		return nil, domain.ErrRecommendationFailed
	}
	if len(seeds) == 0 {
		metrics.RecommendationsTotal.WithLabelValues("cold").Inc()
		return s.popular(ctx, limit, log)
	}

	prof := buildProfile(seeds, s.topKeywords)

	pool, err := s.papers.ListApproved(ctx, 0)
	if err != nil {
		log.Error("candidate pool lookup failed",
			zap.String("user_id", userID), zap.Error(err))
		return nil, domain.ErrRecommendationFailed
	}

	interactedSet := make(map[string]struct{}, len(interacted))
	for _, id := range interacted {
		interactedSet[id] = struct{}{}
	}

	candidates := pool[:0]
	for _, p := range pool {
		if _, seen := interactedSet[p.ID]; seen {
			continue
		}
		if prof.matches(&p) {
			candidates = append(candidates, p)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ViewCount > candidates[j].ViewCount
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	metrics.RecommendationsTotal.WithLabelValues("warm").Inc()
	return candidates, nil
}

// interactedIDs unions bookmarks with recent views, bookmarks first.
// Either source failing is logged and treated as empty: a broken
// interaction log must not take recommendations down.
func (s *Service) interactedIDs(ctx context.Context, userID string, log *zap.Logger) []string {
	bookmarks, err := s.interactions.BookmarkedPaperIDs(ctx, userID)
	if err != nil {
		log.Warn("bookmark lookup failed", zap.String("user_id", userID), zap.Error(err))
		bookmarks = nil
	}
	views, err := s.interactions.RecentViewedPaperIDs(ctx, userID, s.window)
	if err != nil {
		log.Warn("view log lookup failed", zap.String("user_id", userID), zap.Error(err))
		views = nil
	}

	seen := make(map[string]struct{}, len(bookmarks)+len(views))
	ids := make([]string, 0, len(bookmarks)+len(views))
	for _, id := range append(bookmarks, views...) {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// popular is the cold-start fallback: top approved papers by view count.
func (s *Service) popular(ctx context.Context, limit int, log *zap.Logger) ([]domain.Paper, error) {
	papers, err := s.papers.ListApproved(ctx, 0)
	if err != nil {
		log.Error("popularity fallback failed", zap.Error(err))
		return nil, domain.ErrRecommendationFailed
	}
	sort.SliceStable(papers, func(i, j int) bool {
		return papers[i].ViewCount > papers[j].ViewCount
	})
	if len(papers) > limit {
		papers = papers[:limit]
	}
	return papers, nil
}

// buildProfile computes keyword frequency across the interacted papers,
// keeping the top topKeywords (ties by first occurrence) and the distinct
// subject areas.
func buildProfile(seeds []domain.Paper, topKeywords int) profile {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	subjects := make(map[string]struct{})

	for _, p := range seeds {
		for _, kw := range p.Keywords {
			k := strings.ToLower(kw)
			if _, seen := counts[k]; !seen {
				firstSeen[k] = len(order)
				order = append(order, k)
			}
			counts[k]++
		}
		if p.SubjectArea != "" {
			subjects[strings.ToLower(p.SubjectArea)] = struct{}{}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	if len(order) > topKeywords {
		order = order[:topKeywords]
	}

	return profile{keywords: order, subjects: subjects}
}

// matches reports whether a paper intersects the profile's top keywords
// or subject areas.
func (pr *profile) matches(p *domain.Paper) bool {
	for _, kw := range pr.keywords {
		if p.HasKeyword(kw) {
			return true
		}
	}
	if p.SubjectArea == "" {
		return false
	}
	_, ok := pr.subjects[strings.ToLower(p.SubjectArea)]
	return ok
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
