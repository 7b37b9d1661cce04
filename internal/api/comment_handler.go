package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
)

// CommentHandler handles comment endpoints, including those nested under an article
type CommentHandler struct {
	comments service.CommentService
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments service.CommentService, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListForArticle handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	articleID, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var q validation.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}
	page, err := validation.ParsePagination(q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comments, err := h.comments.ListForArticle(c.Request.Context(), articleID, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create handles POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var body models.NewComment
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), articleID, &body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	id, err := validation.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var body models.VoteUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	comment, err := h.comments.UpdateVotes(c.Request.Context(), id, *body.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete handles DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := validation.ParseID("comment_id", c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
