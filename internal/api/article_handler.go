package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
	"github.com/news-api/internal/validation"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	articles service.ArticleService
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articles service.ArticleService, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles
// Query parameters are validated before any query runs.
func (h *ArticleHandler) List(c *gin.Context) {
	var q validation.ArticleListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	params, err := validation.ParseArticleListParams(q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	page, err := h.articles.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var body models.NewArticle
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	article, err := h.articles.Create(c.Request.Context(), &body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var body models.VoteUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	article, err := h.articles.UpdateVotes(c.Request.Context(), id, *body.IncVotes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Delete handles DELETE /api/articles/:article_id
// The article's comments are removed with it.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := validation.ParseID("article_id", c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
