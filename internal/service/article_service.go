package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// List runs the page query, the filter-only count and, when a topic is
// given, the topic existence check concurrently. A missing topic wins over
// whatever the other two returned, since an unknown topic also matches no rows.
func (s *articleService) List(ctx context.Context, params *models.ArticleListParams) (*models.ArticlePage, error) {
	var (
		articles    []*models.Article
		total       int
		topicExists = true
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		articles, err = s.repos.Article.List(gctx, params)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = s.repos.Article.Count(gctx, params)
		return err
	})

	if params.Topic != "" {
		g.Go(func() error {
			err := s.repos.Exists.Exists(gctx, repository.KindTopic, params.Topic)
			if err == nil {
				return nil
			}
			if errors.Is(err, apperror.ErrNotFound) {
				topicExists = false
				return nil
			}
			return err
		})
	}

	err := g.Wait()
	if !topicExists {
		return nil, apperror.NewNotFoundError("topic", params.Topic)
	}
	if err != nil {
		return nil, err
	}

	if articles == nil {
		articles = []*models.Article{}
	}

	s.log.Debug().
		Str("sort_by", params.SortBy).
		Str("order", params.Order).
		Str("topic", params.Topic).
		Int("limit", params.Limit).
		Int("page", params.Page).
		Int("returned", len(articles)).
		Int("total_count", total).
		Msg("Articles listed")

	return &models.ArticlePage{Articles: articles, TotalCount: total}, nil
}

// Get retrieves a single article with its comment count
func (s *articleService) Get(ctx context.Context, id int) (*models.Article, error) {
	return s.repos.Article.GetByID(ctx, id)
}

// Create checks the author and topic exist, then inserts the article
func (s *articleService) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.repos.Exists.Exists(gctx, repository.KindUser, article.Author)
	})
	g.Go(func() error {
		return s.repos.Exists.Exists(gctx, repository.KindTopic, article.Topic)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	created, err := s.repos.Article.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("article_id", created.ArticleID).
		Str("author", created.Author).
		Str("topic", created.Topic).
		Msg("Article created")

	return created, nil
}

// UpdateVotes applies a vote delta; negative totals are allowed
func (s *articleService) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	return s.repos.Article.UpdateVotes(ctx, id, delta)
}

// Delete removes an article together with its comments
func (s *articleService) Delete(ctx context.Context, id int) error {
	if err := s.repos.Article.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("article_id", id).Msg("Article deleted")
	return nil
}
