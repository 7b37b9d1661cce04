package models

// Topic groups articles by subject
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// NewTopic is the body of POST /api/topics
type NewTopic struct {
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
}
