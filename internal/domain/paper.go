package domain

import (
	"strings"
	"time"
)

// Paper categories recognized by the repository.
const (
	CategoryCompleted = "Completed"
	CategoryPublished = "Published"
)

// StatusApproved is the only status visible to search and recommendations.
const StatusApproved = "approved"

// Paper is a research paper record. The repository application owns and
// mutates papers; the search engine only reads them.
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
	Status        string
	CreatedAt     time.Time
}

// Searchable reports whether the paper may appear in any result set.
func (p *Paper) Searchable() bool {
	return p.Status == StatusApproved
}

// Text returns the concatenated text used for relevance scoring:
// title, abstract and space-joined keywords.
func (p *Paper) Text() string {
	var sb strings.Builder
	sb.WriteString(p.Title)
	sb.WriteByte(' ')
	sb.WriteString(p.Abstract)
	for _, kw := range p.Keywords {
		sb.WriteByte(' ')
		sb.WriteString(kw)
	}
	return sb.String()
}

// HasKeyword reports whether any paper keyword equals kw (case-insensitive).
func (p *Paper) HasKeyword(kw string) bool {
	for _, k := range p.Keywords {
		if strings.EqualFold(k, kw) {
			return true
		}
	}
	return false
}
