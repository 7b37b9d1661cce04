package repository

import (
	"context"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db database.DBTX
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db database.DBTX) TopicRepository {
	return &topicRepo{db: db}
}

// List returns every topic
func (r *topicRepo) List(ctx context.Context) ([]*models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	defer rows.Close()

	topics := make([]*models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, err
		}
		topics = append(topics, &t)
	}
	return topics, rows.Err()
}

// Create inserts a topic. A duplicate slug surfaces as a constraint error.
func (r *topicRepo) Create(ctx context.Context, topic *models.NewTopic) (*models.Topic, error) {
	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description
	`

	var t models.Topic
	if err := r.db.QueryRowContext(ctx, query, topic.Slug, topic.Description).Scan(&t.Slug, &t.Description); err != nil {
		return nil, apperror.FromDB(err)
	}
	return &t, nil
}
