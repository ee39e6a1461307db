package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"doctrack/internal/metrics"
	"doctrack/internal/model"
	"doctrack/internal/recentsearch"
	"doctrack/internal/repository"
	"doctrack/internal/search"
)

// SearchService serves the header search box and its recent-search list.
type SearchService interface {
	// Lookup returns the first document matching q and records q in the user's recent searches.
	Lookup(ctx context.Context, user model.User, q string) (*model.Document, error)
	Recent(ctx context.Context, user model.User) ([]string, error)
	ClearRecent(ctx context.Context, user model.User) error
}

type searchService struct {
	repo    repository.DocumentRepository
	recent  *recentsearch.Registry
	metrics *metrics.Lifecycle
	log     *zap.Logger
}

func NewSearchService(repo repository.DocumentRepository, recent *recentsearch.Registry, lifecycle *metrics.Lifecycle, log *zap.Logger) SearchService {
	if log == nil {
		log = zap.NewNop()
	}
	return &searchService{repo: repo, recent: recent, metrics: lifecycle, log: log}
}

func (s *searchService) Lookup(ctx context.Context, user model.User, q string) (*model.Document, error) {
	ctx, span := tracer.Start(ctx, "SearchService.Lookup")
	defer span.End()

	if strings.TrimSpace(q) == "" {
		return nil, ErrEmptyQuery
	}
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := search.Lookup(docs, q)
	if errors.Is(err, search.ErrNoMatch) {
		s.metrics.Searched(false)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.metrics.Searched(true)

	cache, err := s.recent.For(ctx, user.ID)
	if err == nil {
		err = cache.Add(ctx, q)
	}
	if err != nil {
		s.log.Warn("recent_search_not_saved", zap.String("user_id", user.ID), zap.Error(err))
	}
	return &doc, nil
}

func (s *searchService) Recent(ctx context.Context, user model.User) ([]string, error) {
	cache, err := s.recent.For(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return cache.Items(), nil
}

func (s *searchService) ClearRecent(ctx context.Context, user model.User) error {
	cache, err := s.recent.For(ctx, user.ID)
	if err != nil {
		return err
	}
	return cache.Clear(ctx)
}
