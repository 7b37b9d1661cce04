package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleDetailQuery = `
	SELECT articles.article_id, articles.title, articles.topic, articles.author, articles.body,
		articles.created_at, articles.votes, articles.article_img_url,
		CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
	FROM articles
	LEFT JOIN comments ON comments.article_id = articles.article_id
	WHERE articles.article_id = $1
	GROUP BY articles.article_id`

// List returns one page of articles without bodies
func (r *articleRepo) List(ctx context.Context, params *models.ArticleListParams) ([]*models.Article, error) {
	q, err := BuildArticleListQuery(params)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	defer rows.Close()

	articles := make([]*models.Article, 0, params.Limit)
	for rows.Next() {
		var a models.Article
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

// Count returns how many articles match the filter of params
func (r *articleRepo) Count(ctx context.Context, params *models.ArticleListParams) (int, error) {
	q := BuildArticleCountQuery(params)

	var count int
	if err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&count); err != nil {
		return 0, apperror.FromDB(err)
	}
	return count, nil
}

// GetByID retrieves an article with body and comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRowContext(ctx, articleDetailQuery, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError("article", strconv.Itoa(id))
	}
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return &a, nil
}

// Create inserts a new article and returns the persisted row
func (r *articleRepo) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	imgURL := models.DefaultArticleImgURL
	if article.ArticleImgURL != nil && *article.ArticleImgURL != "" {
		imgURL = *article.ArticleImgURL
	}

	query := `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var a models.Article
	err := r.db.QueryRowContext(ctx, query,
		article.Author, article.Title, article.Body, article.Topic, imgURL,
	).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return &a, nil
}

// UpdateVotes adds delta to an article's votes
func (r *articleRepo) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + $2
			WHERE article_id = $1
			RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
		)
		SELECT updated.article_id, updated.title, updated.topic, updated.author, updated.body,
			updated.created_at, updated.votes, updated.article_img_url,
			(SELECT CAST(COUNT(*) AS INTEGER) FROM comments WHERE comments.article_id = updated.article_id)
		FROM updated
	`

	var a models.Article
	err := r.db.QueryRowContext(ctx, query, id, delta).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError("article", strconv.Itoa(id))
	}
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return &a, nil
}

// Delete removes an article and its comments in one transaction
func (r *articleRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE article_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete comments of article %d: %w", id, apperror.FromDB(err))
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE article_id = $1", id)
		if err != nil {
			return apperror.FromDB(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperror.NewNotFoundError("article", strconv.Itoa(id))
		}
		return nil
	})
}
