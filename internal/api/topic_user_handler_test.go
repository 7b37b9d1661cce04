package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/models"
)

func TestTopics(t *testing.T) {
	router, ts := setupTestRouter()
	ts.topics.ListFunc = func(ctx context.Context) ([]*models.Topic, error) {
		return []*models.Topic{{Slug: "mitch", Description: "The man, the Mitch, the legend"}}, nil
	}

	w := doRequest(router, "GET", "/api/topics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	topics := decode(t, w)["topics"].([]interface{})
	if len(topics) != 1 || topics[0].(map[string]interface{})["slug"] != "mitch" {
		t.Errorf("Unexpected topics: %v", topics)
	}

	w = doRequest(router, "POST", "/api/topics", `{"slug":"dogs","description":"woof"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	expectMessage(t, doRequest(router, "POST", "/api/topics", `{"slug":"dogs"}`), http.StatusBadRequest, "Bad request")

	ts.topics.CreateFunc = func(ctx context.Context, topic *models.NewTopic) (*models.Topic, error) {
		return nil, &apperror.ConstraintError{Code: "23505", Constraint: "topics_pkey", Cause: errors.New("duplicate")}
	}
	expectMessage(t, doRequest(router, "POST", "/api/topics", `{"slug":"mitch","description":"again"}`), http.StatusBadRequest, "Bad request")
}

func TestUsers(t *testing.T) {
	router, ts := setupTestRouter()
	ts.users.ListFunc = func(ctx context.Context) ([]*models.User, error) {
		return []*models.User{{Username: "lurker"}}, nil
	}
	ts.users.GetFunc = func(ctx context.Context, username string) (*models.User, error) {
		if username == "lurker" {
			return &models.User{Username: "lurker", Name: "do_nothing"}, nil
		}
		return nil, apperror.NewNotFoundError("user", username)
	}

	w := doRequest(router, "GET", "/api/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if users := decode(t, w)["users"].([]interface{}); len(users) != 1 {
		t.Errorf("Expected 1 user, got %v", users)
	}

	w = doRequest(router, "GET", "/api/users/lurker", "")
	if user := decode(t, w)["user"].(map[string]interface{}); user["name"] != "do_nothing" {
		t.Errorf("Unexpected user: %v", user)
	}

	expectMessage(t, doRequest(router, "GET", "/api/users/nobody", ""), http.StatusNotFound, "User does not exist")
}
