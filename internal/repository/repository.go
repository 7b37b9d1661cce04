package repository

import (
	"context"

	"github.com/news-api/internal/cache"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, params *models.ArticleListParams) ([]*models.Article, error)
	Count(ctx context.Context, params *models.ArticleListParams) (int, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Delete(ctx context.Context, id int) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Exists  ExistenceChecker
}

// New creates all repositories with the given database connection. A nil
// cache disables existence caching.
func New(db *database.DB, c *cache.Cache) *Repositories {
	var exists ExistenceChecker = NewExistenceChecker(db)
	if c != nil {
		exists = NewCachedExistenceChecker(exists, c)
	}

	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Exists:  exists,
	}
}
