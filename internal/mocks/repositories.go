package mocks

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics      map[string]*models.Topic
	InsertError error
	ListError   error
}

var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: make(map[string]*models.Topic)}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	topics := make([]*models.Topic, 0, len(m.Topics))
	for _, t := range m.Topics {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Slug < topics[j].Slug })
	return topics, nil
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error) {
	if m.InsertError != nil {
		return nil, m.InsertError
	}
	if _, dup := m.Topics[topic.Slug]; dup {
		return nil, &apperror.ConstraintError{Code: "23505", Constraint: "topics_pkey", Cause: errors.New("duplicate key value")}
	}
	t := &models.Topic{Slug: topic.Slug, Description: topic.Description}
	m.Topics[t.Slug] = t
	return t, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := m.Users[username]
	if !ok {
		return nil, apperror.NewNotFoundError("user", username)
	}
	return u, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository.
// The default List returns articles filtered by topic, newest id first.
type MockArticleRepository struct {
	mu         sync.Mutex
	Articles   map[int]*models.Article
	ListFunc   func(ctx context.Context, params *models.ArticleListParams) ([]*models.Article, error)
	CountFunc  func(ctx context.Context, params *models.ArticleListParams) (int, error)
	ListCalls  int
	CountCalls int
	nextID     int
}

var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[int]*models.Article)}
}

// Add stores an article, assigning an id when it has none
func (m *MockArticleRepository) Add(a *models.Article) *models.Article {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ArticleID == 0 {
		m.nextID++
		a.ArticleID = m.nextID
	}
	if a.ArticleID > m.nextID {
		m.nextID = a.ArticleID
	}
	m.Articles[a.ArticleID] = a
	return a
}

func (m *MockArticleRepository) filtered(topic string) []*models.Article {
	out := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		if topic == "" || a.Topic == topic {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArticleID > out[j].ArticleID })
	return out
}

func (m *MockArticleRepository) List(ctx context.Context, params *models.ArticleListParams) ([]*models.Article, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.filtered(params.Topic)
	start := params.Offset()
	if start >= len(all) {
		return []*models.Article{}, nil
	}
	end := start + params.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *MockArticleRepository) Count(ctx context.Context, params *models.ArticleListParams) (int, error) {
	m.mu.Lock()
	m.CountCalls++
	m.mu.Unlock()
	if m.CountFunc != nil {
		return m.CountFunc(ctx, params)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.filtered(params.Topic)), nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, apperror.NewNotFoundError("article", strconv.Itoa(id))
	}
	return a, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	img := models.DefaultArticleImgURL
	if article.ArticleImgURL != nil && *article.ArticleImgURL != "" {
		img = *article.ArticleImgURL
	}
	return m.Add(&models.Article{
		Title:         article.Title,
		Topic:         article.Topic,
		Author:        article.Author,
		Body:          article.Body,
		CreatedAt:     time.Now(),
		ArticleImgURL: img,
	}), nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Articles[id]
	if !ok {
		return nil, apperror.NewNotFoundError("article", strconv.Itoa(id))
	}
	a.Votes += delta
	return a, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Articles[id]; !ok {
		return apperror.NewNotFoundError("article", strconv.Itoa(id))
	}
	delete(m.Articles, id)
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository.
// Usernames not in KnownUsers are rejected like a foreign key violation.
type MockCommentRepository struct {
	mu         sync.Mutex
	Comments   map[int]*models.Comment
	KnownUsers map[string]bool
	nextID     int
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments:   make(map[int]*models.Comment),
		KnownUsers: make(map[string]bool),
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*models.Comment
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := page.Offset()
	if start >= len(all) {
		return nil, nil
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *MockCommentRepository) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.KnownUsers[comment.Username] {
		return nil, &apperror.ConstraintError{Code: "23503", Constraint: "comments_author_fkey", Cause: errors.New("foreign key violation")}
	}
	m.nextID++
	c := &models.Comment{
		CommentID: m.nextID,
		Body:      comment.Body,
		ArticleID: articleID,
		Author:    comment.Username,
		CreatedAt: time.Now(),
	}
	m.Comments[c.CommentID] = c
	return c, nil
}

func (m *MockCommentRepository) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok {
		return nil, apperror.NewNotFoundError("comment", strconv.Itoa(id))
	}
	c.Votes += delta
	return c, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Comments[id]; !ok {
		return apperror.NewNotFoundError("comment", strconv.Itoa(id))
	}
	delete(m.Comments, id)
	return nil
}

// MockExistenceChecker answers from Present, or from ExistsFunc when set
type MockExistenceChecker struct {
	mu         sync.Mutex
	Present    map[repository.Kind]map[interface{}]bool
	ExistsFunc func(ctx context.Context, kind repository.Kind, key interface{}) error
	Calls      []repository.Kind
}

var _ repository.ExistenceChecker = (*MockExistenceChecker)(nil)

func NewMockExistenceChecker() *MockExistenceChecker {
	return &MockExistenceChecker{Present: make(map[repository.Kind]map[interface{}]bool)}
}

// Add marks a key as present
func (m *MockExistenceChecker) Add(kind repository.Kind, key interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Present[kind] == nil {
		m.Present[kind] = make(map[interface{}]bool)
	}
	m.Present[kind][key] = true
}

func (m *MockExistenceChecker) Exists(ctx context.Context, kind repository.Kind, key interface{}) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, kind)
	fn := m.ExistsFunc
	found := m.Present[kind][key]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, kind, key)
	}
	if !found {
		return apperror.NewNotFoundError(string(kind), "")
	}
	return nil
}

// NewMockRepositories wires a full set of mock repositories
func NewMockRepositories() (*repository.Repositories, *MockRepositorySet) {
	set := &MockRepositorySet{
		Topic:   NewMockTopicRepository(),
		User:    NewMockUserRepository(),
		Article: NewMockArticleRepository(),
		Comment: NewMockCommentRepository(),
		Exists:  NewMockExistenceChecker(),
	}
	return &repository.Repositories{
		Topic:   set.Topic,
		User:    set.User,
		Article: set.Article,
		Comment: set.Comment,
		Exists:  set.Exists,
	}, set
}

// MockRepositorySet exposes the concrete mocks behind a Repositories value
type MockRepositorySet struct {
	Topic   *MockTopicRepository
	User    *MockUserRepository
	Article *MockArticleRepository
	Comment *MockCommentRepository
	Exists  *MockExistenceChecker
}
