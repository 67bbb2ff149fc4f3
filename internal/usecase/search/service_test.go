package search

import (
	"context"
	"errors"
	"testing"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
)

type mockRepo struct {
	papers     []domain.Paper
	getErr     error
	findErr    error
	lastCrit   domsearch.Criteria
	lastSimCri domsearch.SimilarCriteria
}

func (m *mockRepo) Get(_ context.Context, id string) (domain.Paper, error) {
	if m.getErr != nil {
		return domain.Paper{}, m.getErr
	}
	for _, p := range m.papers {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Paper{}, domain.ErrPaperNotFound
}

func (m *mockRepo) FindCandidates(_ context.Context, c domsearch.Criteria) ([]domain.Paper, error) {
	m.lastCrit = c
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []domain.Paper
	for _, p := range m.papers {
		if !p.Searchable() {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if !c.Expression.Matches(&p) {
			continue
		}
		out = append(out, p)
		if c.Limit > 0 && len(out) == c.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) FindSimilarCandidates(_ context.Context, c domsearch.SimilarCriteria) ([]domain.Paper, error) {
	m.lastSimCri = c
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []domain.Paper
	for _, p := range m.papers {
		if p.ID == c.ExcludeID || !p.Searchable() {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func corpus() []domain.Paper {
	return []domain.Paper{
		{
			ID: "p1", Title: "Pain Management in Postoperative Care",
			Abstract: "A study of analgesic protocols after surgery.",
			Authors:  []string{"Jane Smith"}, Keywords: []string{"pain", "nursing"},
			SubjectArea: "Nursing", Category: domain.CategoryPublished,
			Status: domain.StatusApproved, ViewCount: 40,
		},
		{
			ID: "p2", Title: "Pain Scales for Pediatric Patients",
			Abstract: "Comparing self-report pain scales.",
			Authors:  []string{"Carlos Reyes"}, Keywords: []string{"pain", "pediatrics"},
			SubjectArea: "Nursing", Category: domain.CategoryCompleted,
			Status: domain.StatusApproved, ViewCount: 10,
		},
		{
			ID: "p3", Title: "Telehealth Adoption Rates",
			Abstract: "Survey of rural clinics.",
			Authors:  []string{"Amira Hassan"}, Keywords: []string{"telehealth"},
			SubjectArea: "Public Health", Category: domain.CategoryPublished,
			Status: domain.StatusApproved, ViewCount: 90,
		},
	}
}

func TestSearch_BooleanQueryRoundTrip(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo)

	papers, err := svc.Search(context.Background(), domsearch.Request{
		Query: "author:Smith AND pain",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(papers) != 1 || papers[0].ID != "p1" {
		t.Fatalf("author:Smith AND pain should match exactly p1, got %v", paperIDs(papers))
	}
}

func TestSearch_EmptyQueryWithCategoryFilter(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo)

	papers, err := svc.Search(context.Background(), domsearch.Request{
		Category: domain.CategoryPublished,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := paperIDs(papers); len(got) != 2 {
		t.Fatalf("empty query must match all within the category filter, got %v", got)
	}
	for _, p := range papers {
		if p.Category != domain.CategoryPublished {
			t.Errorf("paper %s has category %q", p.ID, p.Category)
		}
	}
}

func TestSearch_PlainTextIsImplicitTerm(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo)

	papers, err := svc.Search(context.Background(), domsearch.Request{Query: "telehealth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(papers) != 1 || papers[0].ID != "p3" {
		t.Fatalf("plain term should match across fields, got %v", paperIDs(papers))
	}
}

func TestSearch_SemanticReranks(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo)

	// filtered mode keeps repository order: p1 before p2
	papers, err := svc.Search(context.Background(), domsearch.Request{Query: "pain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(papers) != 2 || papers[0].ID != "p1" {
		t.Fatalf("filtered mode should keep corpus order, got %v", paperIDs(papers))
	}

	// semantic mode reranks by TF-IDF: "pain" is denser in p2
	papers, err = svc.Search(context.Background(), domsearch.Request{
		Query:    "pain",
		Semantic: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(papers) != 2 || papers[0].ID != "p2" {
		t.Fatalf("semantic mode should rank the densest match first, got %v", paperIDs(papers))
	}
}

func TestSearch_LimitClamping(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo).WithLimits(2, 5, 100)

	if _, err := svc.Search(context.Background(), domsearch.Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCrit.Limit != 2 {
		t.Errorf("zero limit should fall back to default, got %d", repo.lastCrit.Limit)
	}

	if _, err := svc.Search(context.Background(), domsearch.Request{Limit: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCrit.Limit != 5 {
		t.Errorf("limit above max should clamp to max, got %d", repo.lastCrit.Limit)
	}
}

func TestSearch_StorageFailureIsGeneric(t *testing.T) {
	repo := &mockRepo{findErr: errors.New("dial tcp: connection refused")}
	svc := New(repo)

	_, err := svc.Search(context.Background(), domsearch.Request{Query: "pain"})
	if !errors.Is(err, domain.ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed, got %v", err)
	}
}

func TestSimilar(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo)

	papers, err := svc.Similar(context.Background(), "p1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSimCri.ExcludeID != "p1" {
		t.Errorf("source paper must be excluded from candidates")
	}
	if len(repo.lastSimCri.KeyTerms) == 0 {
		t.Error("key terms from the source paper should seed the candidate filter")
	}
	if len(papers) == 0 || papers[0].ID != "p2" {
		t.Fatalf("the other pain paper should rank first, got %v", paperIDs(papers))
	}
	for _, p := range papers {
		if p.ID == "p1" {
			t.Fatal("source paper must not appear in its own similar list")
		}
	}
}

func TestSimilar_UnknownID(t *testing.T) {
	repo := &mockRepo{papers: corpus()}
	svc := New(repo)

	_, err := svc.Similar(context.Background(), "ghost", 5)
	if !errors.Is(err, domain.ErrPaperNotFound) {
		t.Fatalf("expected ErrPaperNotFound, got %v", err)
	}
}

func TestSimilar_StorageFailureIsGeneric(t *testing.T) {
	repo := &mockRepo{getErr: errors.New("dial tcp: connection refused")}
	svc := New(repo)

	_, err := svc.Similar(context.Background(), "p1", 5)
	if !errors.Is(err, domain.ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed, got %v", err)
	}
}

func paperIDs(papers []domain.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.ID
	}
	return out
}
