package paper

import (
	"context"
	"sort"
	"strings"
)

// mockStore implements the consumer interface for tests with an
// in-memory key space.
type mockStore struct {
	hashes  map[string]map[string]string
	scanErr error
	getErr  error
}

func newMockStore() *mockStore {
	return &mockStore{hashes: make(map[string]map[string]string)}
}

func (m *mockStore) put(key string, fields map[string]string) {
	m.hashes[key] = fields
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if h, ok := m.hashes[key]; ok {
		return h, nil
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		h, err := m.HGetAll(ctx, k)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

func (m *mockStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.hashes {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// paperHash builds a stored hash for fixtures.
func paperHash(title, abstract, authorsJSON, keywordsJSON, subject, category, year, views, status, createdAt string) map[string]string {
	return map[string]string{
		"title":          title,
		"abstract":       abstract,
		"authors":        authorsJSON,
		"keywords":       keywordsJSON,
		"subject_area":   subject,
		"category":       category,
		"year_completed": year,
		"view_count":     views,
		"status":         status,
		"created_at":     createdAt,
	}
}
