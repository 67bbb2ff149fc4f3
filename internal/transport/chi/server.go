// Package chi exposes the search engine over JSON/REST.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
	recommenduc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/recommend"
	searchuc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/search"
)

// userIDHeader carries the caller identity set by the upstream gateway.
const userIDHeader = "X-User-ID"

// AuditRecorder records one audit event per completed advanced search.
type AuditRecorder interface {
	RecordSearch(ctx context.Context, userID, rawQuery string, resultCount int) error
}

// Pinger reports storage connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server routes the search REST surface.
type Server struct {
	search        *searchuc.Service
	recommend     *recommenduc.Service
	audit         AuditRecorder
	pinger        Pinger
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	recommend *recommenduc.Service,
	audit AuditRecorder,
	pinger Pinger,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		recommend: recommend,
		audit:     audit,
		pinger:    pinger,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrPaperNotFound, http.StatusNotFound, "paper_not_found"),
		sentinelHandler(domain.ErrSearchFailed, http.StatusInternalServerError, "search_failed"),
		sentinelHandler(domain.ErrRecommendationFailed, http.StatusInternalServerError, "recommendations_failed"),
	}
	return s
}

// Routes registers all endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/api/v1/search", func(r chi.Router) {
		r.Get("/advanced", s.AdvancedSearch)
		r.Get("/similar/{id}", s.SimilarPapers)
		r.Get("/recommendations", s.Recommendations)
	})
}

// AdvancedSearch handles GET /api/v1/search/advanced.
func (s *Server) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := domsearch.Request{
		Query:       q.Get("query"),
		Category:    q.Get("category"),
		SubjectArea: q.Get("subjectArea"),
		Author:      q.Get("author"),
		Semantic:    parseBool(q.Get("semantic")),
		Limit:       parseInt(q.Get("limit")),
	}
	if year := q.Get("yearCompleted"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "yearCompleted must be an integer")
			return
		}
		req.YearCompleted = y
	}

	papers, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	// one audit event per successful advanced search
	userID := r.Header.Get(userIDHeader)
	if auditErr := s.audit.RecordSearch(r.Context(), userID, req.Query, len(papers)); auditErr != nil {
		s.logger.Warn("search audit write failed", zap.Error(auditErr))
	}

	writeJSON(w, http.StatusOK, paperList(papers))
}

// SimilarPapers handles GET /api/v1/search/similar/{id}.
func (s *Server) SimilarPapers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "paper id is required")
		return
	}

	papers, err := s.search.Similar(r.Context(), id, parseInt(r.URL.Query().Get("limit")))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paperList(papers))
}

// Recommendations handles GET /api/v1/search/recommendations.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "missing "+userIDHeader+" header")
		return
	}

	papers, err := s.recommend.Recommend(r.Context(), userID, parseInt(r.URL.Query().Get("limit")))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paperList(papers))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := s.pinger.Ping(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{"status": status})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
