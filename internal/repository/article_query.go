package repository

import (
	"fmt"
	"strings"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

// articleSummaryColumns is every article column except body
const articleSummaryColumns = `articles.article_id, articles.title, articles.topic, articles.author,
	articles.created_at, articles.votes, articles.article_img_url`

// commentCountColumn and articlesWithComments form the per-article comment
// count. The LEFT JOIN keeps articles that have no comments.
const (
	commentCountColumn   = `CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count`
	articlesWithComments = `FROM articles
	LEFT JOIN comments ON comments.article_id = articles.article_id`
)

// sortExpressions maps each allowed sort_by value to the SQL it is ordered by.
// ORDER BY cannot take bind parameters, so only these strings are ever
// interpolated into a listing query.
var sortExpressions = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

var sortDirections = map[string]string{
	models.OrderAsc:  "ASC",
	models.OrderDesc: "DESC",
}

// Query is SQL text with its positional arguments
type Query struct {
	SQL  string
	Args []interface{}
}

// BuildArticleListQuery builds the paginated, filtered and sorted listing.
func BuildArticleListQuery(params *models.ArticleListParams) (Query, error) {
	column, ok := sortExpressions[params.SortBy]
	if !ok {
		return Query{}, apperror.InvalidQuery("sort_by")
	}
	direction, ok := sortDirections[params.Order]
	if !ok {
		return Query{}, apperror.InvalidQuery("order")
	}
	if params.Limit < 1 {
		return Query{}, apperror.InvalidQuery("limit")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(articleSummaryColumns)
	b.WriteString(", ")
	b.WriteString(commentCountColumn)
	b.WriteString("\n")
	b.WriteString(articlesWithComments)

	where, args := articleFilter(params, nil)
	b.WriteString(where)

	b.WriteString("\nGROUP BY articles.article_id")
	fmt.Fprintf(&b, "\nORDER BY %s %s", column, direction)

	args = append(args, params.Limit)
	fmt.Fprintf(&b, "\nLIMIT $%d", len(args))

	if offset := params.Offset(); offset > 0 {
		args = append(args, offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}

	return Query{SQL: b.String(), Args: args}, nil
}

// BuildArticleCountQuery counts every article matching the filter, ignoring
// sort and pagination.
func BuildArticleCountQuery(params *models.ArticleListParams) Query {
	where, args := articleFilter(params, nil)
	return Query{
		SQL:  "SELECT CAST(COUNT(*) AS INTEGER) FROM articles" + where,
		Args: args,
	}
}

// articleFilter is shared by the listing and the count so both apply the same filter.
func articleFilter(params *models.ArticleListParams, args []interface{}) (string, []interface{}) {
	if params.Topic == "" {
		return "", args
	}
	args = append(args, params.Topic)
	return fmt.Sprintf("\nWHERE articles.topic = $%d", len(args)), args
}
