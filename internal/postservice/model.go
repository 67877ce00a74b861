package postservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

var (
	ErrDuplicateSlug  = errors.New("duplicate slug")
	ErrRecordNotFound = errors.New("record not found")
)

const queryTimeout = 5 * time.Second

func newPostModel(db *sql.DB) *PostModel {
	return &PostModel{db: db}
}

// uniqueViolation is a helper function to check if the error is a unique
// constraint violation on the named constraint.
func uniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *PostModel) insert(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO posts (title, content, slug, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := m.db.QueryRowContext(ctx, query, p.Title, p.Content, p.Slug, p.UserID).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		switch {
		case uniqueViolation(err, "posts_slug_key"):
			return ErrDuplicateSlug
		default:
			return err
		}
	}

	return nil
}

func (m *PostModel) getBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `
		SELECT id, title, content, slug, user_id, created_at
		FROM posts
		WHERE slug = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p Post

	err := m.db.QueryRowContext(ctx, query, slug).Scan(&p.ID, &p.Title, &p.Content, &p.Slug, &p.UserID, &p.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &p, nil
}

func (m *PostModel) getAll(ctx context.Context) ([]Post, error) {
	query := `
		SELECT id, title, content, slug, user_id, created_at
		FROM posts
		ORDER BY created_at DESC`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Slug, &p.UserID, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (m *PostModel) deleteBySlug(ctx context.Context, slug string) error {
	query := `
		DELETE FROM posts
		WHERE slug = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := m.db.ExecContext(ctx, query, slug)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return errors.New("too many rows affected")
		}
	}

	return nil
}
