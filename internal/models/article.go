package models

import (
	"time"
)

// DefaultArticleImgURL is stored when an article is created without an image
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents an article in the system. CommentCount is derived from
// the comments table on every read and never stored.
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body,omitempty" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// NewArticle is the body of POST /api/articles
type NewArticle struct {
	Author        string  `json:"author" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Body          string  `json:"body" binding:"required"`
	Topic         string  `json:"topic" binding:"required"`
	ArticleImgURL *string `json:"article_img_url"`
}

// ArticlePage is one page of a filtered article listing
type ArticlePage struct {
	Articles   []*Article `json:"articles"`
	TotalCount int        `json:"total_count"`
}

// Sort directions accepted by the article listing
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Listing defaults
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = OrderDesc
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ValidSortColumns defines the columns articles may be sorted by
var ValidSortColumns = map[string]bool{
	"author":          true,
	"title":           true,
	"article_id":      true,
	"topic":           true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
	"comment_count":   true,
}

// Pagination is a validated limit/page pair
type Pagination struct {
	Limit int
	Page  int
}

// Offset returns the number of rows skipped before the page starts
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ArticleListParams holds validated listing parameters. An empty Topic means no filter.
type ArticleListParams struct {
	SortBy string
	Order  string
	Topic  string
	Pagination
}
