// Package search holds the request and criteria types shared by the
// search use case and the corpus repository.
package search

import (
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/query"
)

// Request carries the advanced-search parameters as received from a
// caller. Zero values mean "no constraint".
type Request struct {
	Query         string
	Category      string
	YearCompleted int
	SubjectArea   string
	Author        string
	Semantic      bool
	Limit         int
}

// Criteria are the hard filters a corpus lookup applies before any
// ranking. Status is always constrained to approved by the repository.
type Criteria struct {
	Expression    query.Expression
	Category      string // equality
	YearCompleted int    // equality, 0 = any
	SubjectArea   string // substring
	Author        string // substring against any author
	Limit         int    // 0 = unbounded
}

// SimilarCriteria selects the candidate pool for "find similar": approved
// papers other than the source whose keywords intersect the key terms, or
// that share the source's subject area or category.
type SimilarCriteria struct {
	ExcludeID   string
	KeyTerms    []string
	SubjectArea string
	Category    string
	Limit       int
}
