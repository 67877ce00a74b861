package postservice

import (
	"database/sql"
	"time"
)

type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Content is stored in Markdown format.
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m *PostModel
}
