package mocks

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	ListFunc   func(ctx context.Context) ([]*models.Topic, error)
	CreateFunc func(ctx context.Context, topic *models.NewTopic) (*models.Topic, error)
}

var _ service.TopicService = (*MockTopicService)(nil)

func (m *MockTopicService) List(ctx context.Context) ([]*models.Topic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.Topic{}, nil
}

func (m *MockTopicService) Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, topic)
	}
	return &models.Topic{Slug: topic.Slug, Description: topic.Description}, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	ListFunc func(ctx context.Context) ([]*models.User, error)
	GetFunc  func(ctx context.Context, username string) (*models.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) List(ctx context.Context) ([]*models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.User{}, nil
}

func (m *MockUserService) Get(ctx context.Context, username string) (*models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, username)
	}
	return nil, apperror.NewNotFoundError("user", username)
}

// MockArticleService is a mock implementation of ArticleService.
// LastListParams records what the handler passed to List.
type MockArticleService struct {
	ListFunc        func(ctx context.Context, params *models.ArticleListParams) (*models.ArticlePage, error)
	GetFunc         func(ctx context.Context, id int) (*models.Article, error)
	CreateFunc      func(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	UpdateVotesFunc func(ctx context.Context, id, delta int) (*models.Article, error)
	DeleteFunc      func(ctx context.Context, id int) error
	LastListParams  *models.ArticleListParams
	ListCalls       int
}

var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) List(ctx context.Context, params *models.ArticleListParams) (*models.ArticlePage, error) {
	m.ListCalls++
	m.LastListParams = params
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return &models.ArticlePage{Articles: []*models.Article{}}, nil
}

func (m *MockArticleService) Get(ctx context.Context, id int) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, apperror.NewNotFoundError("article", "")
}

func (m *MockArticleService) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}
	return &models.Article{
		ArticleID:     1,
		Title:         article.Title,
		Topic:         article.Topic,
		Author:        article.Author,
		Body:          article.Body,
		ArticleImgURL: models.DefaultArticleImgURL,
	}, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.UpdateVotesFunc != nil {
		return m.UpdateVotesFunc(ctx, id, delta)
	}
	return &models.Article{ArticleID: id, Votes: delta}, nil
}

func (m *MockArticleService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListForArticleFunc func(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error)
	CreateFunc         func(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotesFunc    func(ctx context.Context, id, delta int) (*models.Comment, error)
	DeleteFunc         func(ctx context.Context, id int) error
	LastPage           models.Pagination
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListForArticle(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error) {
	m.LastPage = page
	if m.ListForArticleFunc != nil {
		return m.ListForArticleFunc(ctx, articleID, page)
	}
	return []*models.Comment{}, nil
}

func (m *MockCommentService) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, articleID, comment)
	}
	return &models.Comment{CommentID: 19, ArticleID: articleID, Author: comment.Username, Body: comment.Body}, nil
}

func (m *MockCommentService) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	if m.UpdateVotesFunc != nil {
		return m.UpdateVotesFunc(ctx, id, delta)
	}
	return &models.Comment{CommentID: id, Votes: delta}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// NewMockServices bundles fresh service mocks
func NewMockServices() *service.Services {
	return &service.Services{
		Topic:   &MockTopicService{},
		User:    &MockUserService{},
		Article: &MockArticleService{},
		Comment: &MockCommentService{},
	}
}
