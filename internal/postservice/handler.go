package postservice

import (
	"context"
	"database/sql"
	"errors"

	"miniblog/internal/common"
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{m: newPostModel(db)}
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
	UserID  int    `json:"userId"`
}

// CreatePost creates a new post. When no slug is supplied one is derived from
// the title. The referenced user id is not checked against the users table.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateInt(v, req.UserID, "userId")

	slug := req.Slug
	if slug == "" {
		slug = DeriveSlug(req.Title)
	}
	validateSlug(v, slug)

	if !v.Valid() {
		return nil, v.ValidationError()
	}

	// Precheck keeps the common case friendly; the unique index on slug is
	// the actual guarantee when two creates race.
	_, err := s.m.getBySlug(ctx, slug)
	if err == nil {
		return nil, ErrDuplicateSlug
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	post := &Post{
		Title:   req.Title,
		Content: sanitizeContent(req.Content),
		Slug:    slug,
		UserID:  req.UserID,
	}

	if err := s.m.insert(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetPostBySlug returns the post stored under the given slug.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	v := common.NewValidator()
	validateSlug(v, slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBySlug(ctx, slug)
}

// GetPosts returns all posts, newest first.
func (s *PostService) GetPosts(ctx context.Context) ([]Post, error) {
	return s.m.getAll(ctx)
}

// DeletePostBySlug deletes the post stored under the given slug.
func (s *PostService) DeletePostBySlug(ctx context.Context, slug string) error {
	v := common.NewValidator()
	validateSlug(v, slug)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteBySlug(ctx, slug)
}
