package paper

import (
	"strings"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
)

// matchesCriteria applies the approved-status constraint, the scalar
// filters and the query expression conjunctively.
func matchesCriteria(p *domain.Paper, c domsearch.Criteria) bool {
	if !p.Searchable() {
		return false
	}
	if c.Category != "" && !strings.EqualFold(p.Category, c.Category) {
		return false
	}
	if c.YearCompleted != 0 && p.YearCompleted != c.YearCompleted {
		return false
	}
	if c.SubjectArea != "" && !containsFold(p.SubjectArea, c.SubjectArea) {
		return false
	}
	if c.Author != "" && !anyContainsFold(p.Authors, c.Author) {
		return false
	}
	return c.Expression.Matches(p)
}

func matchesSimilar(p *domain.Paper, c domsearch.SimilarCriteria) bool {
	if !p.Searchable() || p.ID == c.ExcludeID {
		return false
	}
	for _, term := range c.KeyTerms {
		if p.HasKeyword(term) {
			return true
		}
	}
	if c.SubjectArea != "" && strings.EqualFold(p.SubjectArea, c.SubjectArea) {
		return true
	}
	return c.Category != "" && strings.EqualFold(p.Category, c.Category)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(items []string, substr string) bool {
	for _, it := range items {
		if containsFold(it, substr) {
			return true
		}
	}
	return false
}
