package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

// positiveIntRegex rejects zero, signs, and leading zeros
var positiveIntRegex = regexp.MustCompile(`^[1-9][0-9]*$`)

// ArticleListQuery is the raw query string of GET /api/articles
type ArticleListQuery struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Topic  string `form:"topic"`
	Limit  string `form:"limit"`
	Page   string `form:"p"`
}

// PageQuery is the raw query string of paginated sub-resources
type PageQuery struct {
	Limit string `form:"limit"`
	Page  string `form:"p"`
}

// ParseArticleListParams validates a listing request. Rules run in a fixed
// order (sort_by, order, limit, p) and the first failure is returned.
func ParseArticleListParams(q ArticleListQuery) (*models.ArticleListParams, error) {
	params := &models.ArticleListParams{
		SortBy: models.DefaultSortBy,
		Order:  models.DefaultOrder,
		Topic:  q.Topic,
	}

	if q.SortBy != "" {
		if !models.ValidSortColumns[q.SortBy] {
			return nil, apperror.InvalidQuery("sort_by")
		}
		params.SortBy = q.SortBy
	}

	if q.Order != "" {
		order := strings.ToLower(q.Order)
		if order != models.OrderAsc && order != models.OrderDesc {
			return nil, apperror.InvalidQuery("order")
		}
		params.Order = order
	}

	pagination, err := ParsePagination(PageQuery{Limit: q.Limit, Page: q.Page})
	if err != nil {
		return nil, err
	}
	params.Pagination = pagination

	return params, nil
}

// ParsePagination validates limit (default 10) then p (default 1). A page
// whose offset would overflow is reported as an invalid p.
func ParsePagination(q PageQuery) (models.Pagination, error) {
	p := models.Pagination{Limit: models.DefaultLimit, Page: models.DefaultPage}

	if q.Limit != "" {
		limit, ok := parsePositiveInt(q.Limit)
		if !ok {
			return p, apperror.InvalidQuery("limit")
		}
		p.Limit = limit
	}

	if q.Page != "" {
		page, ok := parsePositiveInt(q.Page)
		if !ok {
			return p, apperror.InvalidQuery("p")
		}
		p.Page = page
	}

	// (Page-1)*Limit must fit in an int
	if p.Page-1 > math.MaxInt/p.Limit {
		return p, apperror.InvalidQuery("p")
	}

	return p, nil
}

// ParseID validates a numeric path identifier such as article_id or comment_id.
func ParseID(field, raw string) (int, error) {
	id, ok := parsePositiveInt(raw)
	if !ok {
		return 0, apperror.BadRequest(field)
	}
	return id, nil
}

func parsePositiveInt(s string) (int, bool) {
	if !positiveIntRegex.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// overflow
		return 0, false
	}
	return n, true
}
