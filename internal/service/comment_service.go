package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle fetches the page and checks the article exists concurrently.
// An existing article without comments yields an empty slice.
func (s *commentService) ListForArticle(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error) {
	var comments []*models.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.repos.Exists.Exists(gctx, repository.KindArticle, articleID)
	})
	g.Go(func() error {
		var err error
		comments, err = s.repos.Comment.ListByArticle(gctx, articleID, page)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// Create adds a comment to an existing article. An unknown username is
// rejected by the database as a constraint violation.
func (s *commentService) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if err := s.repos.Exists.Exists(ctx, repository.KindArticle, articleID); err != nil {
		return nil, err
	}

	created, err := s.repos.Comment.Create(ctx, articleID, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("comment_id", created.CommentID).
		Int("article_id", articleID).
		Str("author", created.Author).
		Msg("Comment created")

	return created, nil
}

// UpdateVotes applies a vote delta to a comment
func (s *commentService) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	return s.repos.Comment.UpdateVotes(ctx, id, delta)
}

// Delete removes a comment
func (s *commentService) Delete(ctx context.Context, id int) error {
	if err := s.repos.Comment.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
