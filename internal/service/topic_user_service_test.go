package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/mocks"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/service"
)

func TestTopicService(t *testing.T) {
	repos, _ := mocks.NewMockRepositories()
	svc := service.NewServices(repos, zerolog.Nop())
	ctx := context.Background()

	topics, err := svc.Topic.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, topics)

	created, err := svc.Topic.Create(ctx, &models.NewTopic{Slug: "dogs", Description: "woof"})
	require.NoError(t, err)
	assert.Equal(t, "dogs", created.Slug)

	_, err = svc.Topic.Create(ctx, &models.NewTopic{Slug: "dogs", Description: "again"})
	assert.ErrorIs(t, err, apperror.ErrConstraint)

	topics, err = svc.Topic.List(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 1)
}

func TestUserService(t *testing.T) {
	repos, set := mocks.NewMockRepositories()
	set.User.Users["lurker"] = &models.User{Username: "lurker", Name: "do_nothing"}
	set.User.Users["icellusedkars"] = &models.User{Username: "icellusedkars", Name: "sam"}
	svc := service.NewServices(repos, zerolog.Nop())
	ctx := context.Background()

	users, err := svc.User.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "icellusedkars", users[0].Username)

	user, err := svc.User.Get(ctx, "lurker")
	require.NoError(t, err)
	assert.Equal(t, "do_nothing", user.Name)

	_, err = svc.User.Get(ctx, "nobody")
	require.Error(t, err)
	assert.Equal(t, "User does not exist", err.Error())
}
