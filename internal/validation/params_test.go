package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

func TestParseArticleListParams_Defaults(t *testing.T) {
	params, err := ParseArticleListParams(ArticleListQuery{})
	require.NoError(t, err)

	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "desc", params.Order)
	assert.Equal(t, "", params.Topic)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 1, params.Page)
}

func TestParseArticleListParams_AllSortColumns(t *testing.T) {
	for column := range models.ValidSortColumns {
		t.Run(column, func(t *testing.T) {
			params, err := ParseArticleListParams(ArticleListQuery{SortBy: column, Order: "asc"})
			require.NoError(t, err)
			assert.Equal(t, column, params.SortBy)
			assert.Equal(t, "asc", params.Order)
		})
	}
}

func TestParseArticleListParams_Valid(t *testing.T) {
	params, err := ParseArticleListParams(ArticleListQuery{
		SortBy: "votes",
		Order:  "ASC",
		Topic:  "mitch",
		Limit:  "3",
		Page:   "2",
	})
	require.NoError(t, err)

	assert.Equal(t, &models.ArticleListParams{
		SortBy:     "votes",
		Order:      "asc",
		Topic:      "mitch",
		Pagination: models.Pagination{Limit: 3, Page: 2},
	}, params)
}

func TestParseArticleListParams_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		query   ArticleListQuery
		message string
	}{
		{"unknown sort column", ArticleListQuery{SortBy: "not_a_sort_query"}, "Invalid sort_by query"},
		{"sql in sort column", ArticleListQuery{SortBy: "votes; DROP TABLE articles"}, "Invalid sort_by query"},
		{"body is not sortable", ArticleListQuery{SortBy: "body"}, "Invalid sort_by query"},
		{"unknown order", ArticleListQuery{Order: "sideways"}, "Invalid order query"},
		{"non-numeric limit", ArticleListQuery{Limit: "not-a-limit"}, "Invalid limit query"},
		{"zero limit", ArticleListQuery{Limit: "0"}, "Invalid limit query"},
		{"leading zero limit", ArticleListQuery{Limit: "05"}, "Invalid limit query"},
		{"negative limit", ArticleListQuery{Limit: "-5"}, "Invalid limit query"},
		{"fractional limit", ArticleListQuery{Limit: "2.5"}, "Invalid limit query"},
		{"overflowing limit", ArticleListQuery{Limit: "99999999999999999999999"}, "Invalid limit query"},
		{"non-numeric page", ArticleListQuery{Page: "two"}, "Invalid p query"},
		{"zero page", ArticleListQuery{Page: "0"}, "Invalid p query"},
		{"offset past max int", ArticleListQuery{Limit: "9223372036854775807", Page: "3"}, "Invalid p query"},
		{"offset wraps to zero", ArticleListQuery{Limit: "4611686018427387904", Page: "5"}, "Invalid p query"},
		// fail-fast ordering
		{"sort_by reported before order", ArticleListQuery{SortBy: "nope", Order: "nope"}, "Invalid sort_by query"},
		{"order reported before limit", ArticleListQuery{Order: "nope", Limit: "nope"}, "Invalid order query"},
		{"limit reported before page", ArticleListQuery{Limit: "nope", Page: "nope"}, "Invalid limit query"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := ParseArticleListParams(tc.query)
			assert.Nil(t, params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestParsePagination(t *testing.T) {
	p, err := ParsePagination(PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, models.Pagination{Limit: 10, Page: 1}, p)

	p, err = ParsePagination(PageQuery{Limit: "5", Page: "3"})
	require.NoError(t, err)
	assert.Equal(t, 10, p.Offset())

	_, err = ParsePagination(PageQuery{Page: "-1"})
	assert.EqualError(t, err, "Invalid p query")
}

func TestParsePagination_OffsetBounds(t *testing.T) {
	testCases := []struct {
		name    string
		query   PageQuery
		offset  int
		message string
	}{
		{"small page", PageQuery{Limit: "3", Page: "2"}, 3, ""},
		{"huge limit on first page", PageQuery{Limit: "9223372036854775807", Page: "1"}, 0, ""},
		{"last representable offset", PageQuery{Limit: "4611686018427387903", Page: "3"}, 9223372036854775806, ""},
		{"offset past max int", PageQuery{Limit: "9223372036854775807", Page: "3"}, 0, "Invalid p query"},
		{"offset wraps to zero", PageQuery{Limit: "4611686018427387904", Page: "5"}, 0, "Invalid p query"},
		{"huge page", PageQuery{Limit: "10", Page: "922337203685477582"}, 0, "Invalid p query"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePagination(tc.query)
			if tc.message != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperror.ErrValidation))
				assert.Equal(t, tc.message, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.offset, p.Offset())
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("article_id", "12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, raw := range []string{"banana", "0", "", "1.5", "-3"} {
		_, err := ParseID("article_id", raw)
		var vErr *apperror.ValidationError
		require.True(t, errors.As(err, &vErr), raw)
		assert.Equal(t, "Bad request", vErr.Message)
		assert.Equal(t, "article_id", vErr.Field)
	}
}
