package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, params *models.ArticleListParams) (*models.ArticlePage, error)
	Get(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) error
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos, log),
		User:    newUserService(repos, log),
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
	}
}
