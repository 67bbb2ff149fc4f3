// Package conserve is the embedded Go SDK for the ConServe search and
// recommendation engine. It wires the engine services directly onto the
// shared store, so in-process consumers (the research listing pages, jobs)
// use the exact same parser and scorer as the HTTP API.
package conserve

import (
	"context"
	"errors"
	"fmt"

	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/db"
	dbRedis "github.com/LanceGerbec/ConServe-Repository-sub000/internal/db/redis"
	"github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain"
	domsearch "github.com/LanceGerbec/ConServe-Repository-sub000/internal/domain/search"
	interactionrepo "github.com/LanceGerbec/ConServe-Repository-sub000/internal/repository/interaction"
	paperrepo "github.com/LanceGerbec/ConServe-Repository-sub000/internal/repository/paper"
	recommenduc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/recommend"
	searchuc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/search"
)

// ErrPaperNotFound is returned by SimilarPapers for an unknown paper ID.
var ErrPaperNotFound = domain.ErrPaperNotFound

// Client is the conserve SDK entry point.
type Client struct {
	store     db.Store
	search    *searchuc.Service
	recommend *recommenduc.Service
}

// New creates a conserve Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("conserve: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("conserve: create store: %w", err)
	}

	if err := store.WaitForReady(context.Background(), cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("conserve: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

// wireClient assembles repositories and services over an existing store.
func wireClient(store db.Store, cfg *clientConfig) *Client {
	papers := paperrepo.New(store)
	interactions := interactionrepo.New(store)

	return &Client{
		store: store,
		search: searchuc.New(papers).
			WithLimits(cfg.defaultLimit, cfg.maxLimit, cfg.fetchLimit).
			WithKeyTermCount(cfg.keyTermCount),
		recommend: recommenduc.New(papers, interactions).
			WithLimits(cfg.defaultLimit, cfg.maxLimit).
			WithViewHistoryWindow(cfg.viewHistoryWindow).
			WithTopKeywordCount(cfg.topKeywordCount),
	}
}

// Close shuts down the underlying store.
func (c *Client) Close() {
	c.store.Close()
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("conserve: ping: %w", err)
	}
	return nil
}

// SearchPapers runs an advanced search.
func (c *Client) SearchPapers(ctx context.Context, params SearchParams) ([]Paper, error) {
	papers, err := c.search.Search(ctx, domsearch.Request{
		Query:         params.Query,
		Category:      params.Category,
		YearCompleted: params.YearCompleted,
		SubjectArea:   params.SubjectArea,
		Author:        params.Author,
		Semantic:      params.Semantic,
		Limit:         params.Limit,
	})
	if err != nil {
		return nil, err
	}
	return papersFromDomain(papers), nil
}

// SimilarPapers returns papers similar to the one with the given ID.
func (c *Client) SimilarPapers(ctx context.Context, id string, limit int) ([]Paper, error) {
	papers, err := c.search.Similar(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	return papersFromDomain(papers), nil
}

// Recommendations returns personalized recommendations for a user.
func (c *Client) Recommendations(ctx context.Context, userID string, limit int) ([]Paper, error) {
	papers, err := c.recommend.Recommend(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return papersFromDomain(papers), nil
}
