package benchmark

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/api"
	"github.com/news-api/internal/cache"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
)

type okHealth struct{}

func (okHealth) HealthCheck(ctx context.Context) error { return nil }

func seededRepositories(n int) (*repository.Repositories, *mocks.MockRepositorySet) {
	repos, set := mocks.NewMockRepositories()
	topics := []string{"mitch", "cats", "paper"}
	for _, t := range topics {
		set.Exists.Add(repository.KindTopic, t)
	}
	for i := 1; i <= n; i++ {
		set.Article.Add(&models.Article{
			ArticleID: i,
			Title:     fmt.Sprintf("Article %d", i),
			Topic:     topics[i%len(topics)],
			Author:    "butter_bridge",
			CreatedAt: time.Now(),
		})
	}
	return repos, set
}

// BenchmarkParseArticleListParams benchmarks query-string validation
func BenchmarkParseArticleListParams(b *testing.B) {
	q := validation.ArticleListQuery{SortBy: "votes", Order: "ASC", Topic: "mitch", Limit: "25", Page: "4"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := validation.ParseArticleListParams(q); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildArticleListQuery benchmarks SQL assembly for a filtered page
func BenchmarkBuildArticleListQuery(b *testing.B) {
	params := &models.ArticleListParams{
		SortBy:     "comment_count",
		Order:      models.OrderDesc,
		Topic:      "mitch",
		Pagination: models.Pagination{Limit: 10, Page: 3},
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := repository.BuildArticleListQuery(params); err != nil {
			b.Fatal(err)
		}
		_ = repository.BuildArticleCountQuery(params)
	}
}

// BenchmarkArticleServiceList benchmarks the concurrent listing path
func BenchmarkArticleServiceList(b *testing.B) {
	repos, _ := seededRepositories(1000)
	svc := service.NewServices(repos, zerolog.Nop())
	params := &models.ArticleListParams{
		SortBy:     models.DefaultSortBy,
		Order:      models.DefaultOrder,
		Topic:      "cats",
		Pagination: models.Pagination{Limit: 10, Page: 2},
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Article.List(ctx, params); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCachedExistence compares cached and uncached topic checks
func BenchmarkCachedExistence(b *testing.B) {
	_, set := seededRepositories(0)
	ctx := context.Background()

	b.Run("uncached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = set.Exists.Exists(ctx, repository.KindTopic, "mitch")
		}
	})

	b.Run("cached", func(b *testing.B) {
		checker := repository.NewCachedExistenceChecker(set.Exists, cache.New(time.Minute, time.Minute))
		for i := 0; i < b.N; i++ {
			_ = checker.Exists(ctx, repository.KindTopic, "mitch")
		}
	})
}

// BenchmarkListArticlesEndpoint benchmarks a full request through the router
func BenchmarkListArticlesEndpoint(b *testing.B) {
	gin.SetMode(gin.TestMode)
	repos, _ := seededRepositories(1000)
	services := service.NewServices(repos, zerolog.Nop())
	cfg := &config.Config{Env: "test", CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	router := api.NewRouter(services, okHealth{}, nil, cfg, zerolog.Nop())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/articles?topic=mitch&sort_by=votes&limit=20&p=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}
