package domain

import "errors"

var (
	// ErrPaperNotFound signals a missing paper.
	ErrPaperNotFound = errors.New("paper not found")
	// ErrSearchFailed is the generic failure surfaced to clients when the
	// corpus cannot be queried. The underlying cause stays in server logs.
	ErrSearchFailed = errors.New("search failed")
	// ErrRecommendationFailed is the generic failure for recommendation lookups.
	ErrRecommendationFailed = errors.New("failed to get recommendations")
)
