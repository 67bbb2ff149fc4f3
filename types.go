package conserve

import (
	"time"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

// Paper is the SDK representation of a research paper.
type Paper struct {
	ID            string
	Title         string
	Abstract      string
	Authors       []string
	Keywords      []string
	SubjectArea   string
	Category      string
	YearCompleted int
	ViewCount     int64
	CreatedAt     time.Time
}

// SearchParams are the advanced-search parameters. Zero values mean "no
// constraint".
type SearchParams struct {
	Query         string
	Category      string
	YearCompleted int
	SubjectArea   string
	Author        string
	Semantic      bool
	Limit         int
}

func paperFromDomain(p *domain.Paper) Paper {
	return Paper{
		ID:            p.ID,
		Title:         p.Title,
		Abstract:      p.Abstract,
		Authors:       p.Authors,
		Keywords:      p.Keywords,
		SubjectArea:   p.SubjectArea,
		Category:      p.Category,
		YearCompleted: p.YearCompleted,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
	}
}

func papersFromDomain(papers []domain.Paper) []Paper {
	out := make([]Paper, len(papers))
	for i := range papers {
		out[i] = paperFromDomain(&papers[i])
	}
	return out
}
