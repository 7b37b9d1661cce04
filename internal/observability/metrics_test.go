package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics("test_news")

	assert.NotNil(t, m.RequestsTotal)
	assert.NotNil(t, m.RequestDuration)
	assert.NotNil(t, m.ExistenceChecks)
	assert.NotNil(t, m.Registry())
}

func TestNewMetrics_Twice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("test_news")
		NewMetrics("test_news")
	})
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics("test_news")

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/articles/:article_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/articles/1", "/api/articles/2", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/articles/:article_id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordExistenceCheck(t *testing.T) {
	m := NewMetrics("test_news")

	m.RecordExistenceCheck("topic", "found")
	m.RecordExistenceCheck("topic", "found")
	m.RecordExistenceCheck("user", "missing")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ExistenceChecks.WithLabelValues("topic", "found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ExistenceChecks.WithLabelValues("user", "missing")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewMetrics("test_news")
	m.RecordExistenceCheck("article", "found")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_news_existence_checks_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
