package paper

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
)

func paperKey(id string) string {
	return domain.KeyPrefix + "paper:" + id
}

func idFromKey(key string) string {
	return strings.TrimPrefix(key, domain.KeyPrefix+"paper:")
}

// paperFromHash hydrates a Paper from an HGETALL result map. Fields the
// repository application has not written yet hydrate to zero values; a
// partially written record must never fail a whole search.
func paperFromHash(id string, m map[string]string) domain.Paper {
	p := domain.Paper{
		ID:          id,
		Title:       m["title"],
		Abstract:    m["abstract"],
		SubjectArea: m["subject_area"],
		Category:    m["category"],
		Status:      m["status"],
	}
	p.Authors = stringList(m["authors"])
	p.Keywords = stringList(m["keywords"])
	if y, err := strconv.Atoi(m["year_completed"]); err == nil {
		p.YearCompleted = y
	}
	if v, err := strconv.ParseInt(m["view_count"], 10, 64); err == nil {
		p.ViewCount = v
	}
	if t, err := time.Parse(time.RFC3339, m["created_at"]); err == nil {
		p.CreatedAt = t
	}
	return p
}

// stringList decodes a JSON array field. Legacy records store a single
// plain string; treat those as a one-element list.
func stringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{raw}
	}
	return items
}
