package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
	recommenduc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/recommend"
	searchuc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/search"
)

type mockPapers struct {
	corpus  []domain.Paper
	findErr error
}

func (m *mockPapers) Get(_ context.Context, id string) (domain.Paper, error) {
	for _, p := range m.corpus {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Paper{}, domain.ErrPaperNotFound
}

func (m *mockPapers) FindCandidates(_ context.Context, c domsearch.Criteria) ([]domain.Paper, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []domain.Paper
	for _, p := range m.corpus {
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if !c.Expression.Matches(&p) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPapers) FindSimilarCandidates(_ context.Context, c domsearch.SimilarCriteria) ([]domain.Paper, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []domain.Paper
	for _, p := range m.corpus {
		if p.ID != c.ExcludeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPapers) ByIDs(_ context.Context, ids []string) ([]domain.Paper, error) {
	var out []domain.Paper
	for _, id := range ids {
		for _, p := range m.corpus {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *mockPapers) ListApproved(_ context.Context, _ int) ([]domain.Paper, error) {
	var out []domain.Paper
	for _, p := range m.corpus {
		if p.Status == domain.StatusApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockInteractions struct {
	views     []string
	bookmarks []string
}

func (m *mockInteractions) RecentViewedPaperIDs(_ context.Context, _ string, _ int) ([]string, error) {
	return m.views, nil
}

func (m *mockInteractions) BookmarkedPaperIDs(_ context.Context, _ string) ([]string, error) {
	return m.bookmarks, nil
}

type auditCall struct {
	userID      string
	query       string
	resultCount int
}

type mockAudit struct {
	calls []auditCall
	err   error
}

func (m *mockAudit) RecordSearch(_ context.Context, userID, rawQuery string, resultCount int) error {
	m.calls = append(m.calls, auditCall{userID: userID, query: rawQuery, resultCount: resultCount})
	return m.err
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

func testRouter(papers *mockPapers, audit *mockAudit, pinger *mockPinger) http.Handler {
	searchSvc := searchuc.New(papers)
	recommendSvc := recommenduc.New(papers, &mockInteractions{})
	srv := NewServer(searchSvc, recommendSvc, audit, pinger, zap.NewNop())
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func apiCorpus() []domain.Paper {
	return []domain.Paper{
		{ID: "p1", Title: "Pain Management", Abstract: "Analgesic protocols.",
			Authors: []string{"Jane Smith"}, Keywords: []string{"pain"},
			SubjectArea: "Nursing", Category: domain.CategoryPublished,
			Status: domain.StatusApproved, ViewCount: 40},
		{ID: "p2", Title: "Telehealth Survey", Abstract: "Rural clinics.",
			Authors: []string{"Amira Hassan"}, Keywords: []string{"telehealth"},
			SubjectArea: "Public Health", Category: domain.CategoryCompleted,
			Status: domain.StatusApproved, ViewCount: 90},
	}
}

func doRequest(t *testing.T, h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) paperListResponse {
	t.Helper()
	var out paperListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestAdvancedSearch(t *testing.T) {
	audit := &mockAudit{}
	h := testRouter(&mockPapers{corpus: apiCorpus()}, audit, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet,
		"/api/v1/search/advanced?query=pain", map[string]string{"X-User-ID": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	out := decodeList(t, rec)
	if out.Count != 1 || len(out.Papers) != 1 || out.Papers[0].ID != "p1" {
		t.Fatalf("unexpected envelope: %+v", out)
	}

	if len(audit.calls) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.calls))
	}
	if c := audit.calls[0]; c.userID != "u1" || c.query != "pain" || c.resultCount != 1 {
		t.Errorf("unexpected audit event: %+v", c)
	}
}

func TestAdvancedSearch_BadYear(t *testing.T) {
	h := testRouter(&mockPapers{corpus: apiCorpus()}, &mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet,
		"/api/v1/search/advanced?yearCompleted=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdvancedSearch_StorageFailure(t *testing.T) {
	h := testRouter(&mockPapers{findErr: errors.New("connection refused")},
		&mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/search/advanced?query=pain", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var out errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	if out.Code != "search_failed" || out.Message != "search failed" {
		t.Errorf("cause must not leak to the client, got %+v", out)
	}
}

func TestAdvancedSearch_AuditFailureDoesNotFailRequest(t *testing.T) {
	audit := &mockAudit{err: errors.New("audit store down")}
	h := testRouter(&mockPapers{corpus: apiCorpus()}, audit, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/search/advanced?query=pain", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSimilarPapers(t *testing.T) {
	h := testRouter(&mockPapers{corpus: apiCorpus()}, &mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/search/similar/p1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	out := decodeList(t, rec)
	for _, p := range out.Papers {
		if p.ID == "p1" {
			t.Fatal("source paper must not be in its own similar list")
		}
	}
}

func TestSimilarPapers_NotFound(t *testing.T) {
	h := testRouter(&mockPapers{corpus: apiCorpus()}, &mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/search/similar/ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var out errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	if out.Code != "paper_not_found" {
		t.Errorf("code = %q", out.Code)
	}
}

func TestRecommendations_RequiresUserID(t *testing.T) {
	h := testRouter(&mockPapers{corpus: apiCorpus()}, &mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/search/recommendations", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRecommendations(t *testing.T) {
	h := testRouter(&mockPapers{corpus: apiCorpus()}, &mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/api/v1/search/recommendations",
		map[string]string{"X-User-ID": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	out := decodeList(t, rec)
	// cold-start user: popularity order
	if out.Count != 2 || out.Papers[0].ID != "p2" {
		t.Fatalf("unexpected recommendations: %+v", out)
	}
}

func TestHealthCheck(t *testing.T) {
	h := testRouter(&mockPapers{}, &mockAudit{}, &mockPinger{})

	rec := doRequest(t, h, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	h = testRouter(&mockPapers{}, &mockAudit{}, &mockPinger{err: errors.New("down")})
	rec = doRequest(t, h, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded status = %d", rec.Code)
	}
}

func TestPaperToJSON_NilSlices(t *testing.T) {
	p := domain.Paper{ID: "x"}
	out := paperToJSON(&p)
	if out.Authors == nil || out.Keywords == nil {
		t.Fatal("nil slices must serialize as empty arrays")
	}
}
