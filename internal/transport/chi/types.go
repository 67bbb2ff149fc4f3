package chi

import (
	"time"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

// paperJSON is the wire representation of a paper.
type paperJSON struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Abstract      string   `json:"abstract"`
	Authors       []string `json:"authors"`
	Keywords      []string `json:"keywords"`
	SubjectArea   string   `json:"subjectArea,omitempty"`
	Category      string   `json:"category"`
	YearCompleted int      `json:"yearCompleted,omitempty"`
	ViewCount     int64    `json:"viewCount"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// paperListResponse is the common result envelope.
type paperListResponse struct {
	Papers []paperJSON `json:"papers"`
	Count  int         `json:"count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func paperToJSON(p *domain.Paper) paperJSON {
	out := paperJSON{
		ID:            p.ID,
		Title:         p.Title,
		Abstract:      p.Abstract,
		Authors:       p.Authors,
		Keywords:      p.Keywords,
		SubjectArea:   p.SubjectArea,
		Category:      p.Category,
		YearCompleted: p.YearCompleted,
		ViewCount:     p.ViewCount,
	}
	if out.Authors == nil {
		out.Authors = []string{}
	}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func paperList(papers []domain.Paper) paperListResponse {
	items := make([]paperJSON, len(papers))
	for i := range papers {
		items[i] = paperToJSON(&papers[i])
	}
	return paperListResponse{Papers: items, Count: len(items)}
}
