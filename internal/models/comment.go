package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Body      string    `json:"body" db:"body"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment is the body of POST /api/articles/:article_id/comments
type NewComment struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// VoteUpdate is the body of the PATCH endpoints. A pointer distinguishes a
// missing field from an explicit zero delta.
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}
