package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

type topicService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newTopicService(repos *repository.Repositories, log zerolog.Logger) *topicService {
	return &topicService{
		repos: repos,
		log:   log.With().Str("service", "topic").Logger(),
	}
}

func (s *topicService) List(ctx context.Context) ([]*models.Topic, error) {
	return s.repos.Topic.List(ctx)
}

func (s *topicService) Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error) {
	created, err := s.repos.Topic.Create(ctx, topic)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", created.Slug).Msg("Topic created")
	return created, nil
}
