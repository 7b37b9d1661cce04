package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/news-api/internal/models"
	"github.com/news-api/internal/repository"
)

type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newUserService(repos *repository.Repositories, log zerolog.Logger) *userService {
	return &userService{
		repos: repos,
		log:   log.With().Str("service", "user").Logger(),
	}
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repos.User.List(ctx)
}

func (s *userService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.repos.User.GetByUsername(ctx, username)
}
