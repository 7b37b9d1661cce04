package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	topics service.TopicService
	log    zerolog.Logger
}

func NewTopicHandler(topics service.TopicService, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		topics: topics,
		log:    log.With().Str("handler", "topic").Logger(),
	}
}

// List handles GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// Create handles POST /api/topics
func (h *TopicHandler) Create(c *gin.Context) {
	var body models.NewTopic
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, bindError(err))
		return
	}

	topic, err := h.topics.Create(c.Request.Context(), &body)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
