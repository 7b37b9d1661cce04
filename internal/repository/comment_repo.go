package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db database.DBTX
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db database.DBTX) CommentRepository {
	return &commentRepo{db: db}
}

const commentColumns = `comment_id, body, article_id, author, votes, created_at`

// ListByArticle returns one page of an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int, page models.Pagination) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, articleID, page.Limit, page.Offset())
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Create inserts a comment on an article
func (r *commentRepo) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (author, body, article_id)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRowContext(ctx, query, comment.Username, comment.Body, articleID))
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return c, nil
}

// UpdateVotes adds delta to a comment's votes
func (r *commentRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	query := `
		UPDATE comments SET votes = votes + $2
		WHERE comment_id = $1
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id, delta))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError("comment", strconv.Itoa(id))
	}
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return c, nil
}

// Delete removes a comment
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return apperror.FromDB(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NewNotFoundError("comment", strconv.Itoa(id))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
