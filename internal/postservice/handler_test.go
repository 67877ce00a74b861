package postservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"miniblog/internal/common"
)

func testPost() *CreatePostRequest {
	return &CreatePostRequest{
		Title:   "Hello World",
		Content: "Some content.",
		UserID:  1,
	}
}

func TestCreatePost(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post, err := s.CreatePost(ctx, testPost())
	assert.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "hello-world", post.Slug)

	got, err := s.GetPostBySlug(ctx, "hello-world")
	assert.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, "Hello World", got.Title)
	assert.Equal(t, "Some content.", got.Content)
	assert.Equal(t, 1, got.UserID)
}

func TestCreatePostExplicitSlug(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := testPost()
	req.Slug = "custom-slug"

	post, err := s.CreatePost(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	original, err := s.CreatePost(ctx, testPost())
	assert.NoError(t, err)

	// an explicit slug equal to an existing one must conflict
	req := &CreatePostRequest{
		Title:   "Another Title",
		Content: "Other content.",
		Slug:    "hello-world",
		UserID:  2,
	}

	_, err = s.CreatePost(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	// and the original post must be unchanged
	got, err := s.GetPostBySlug(ctx, "hello-world")
	assert.NoError(t, err)
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, "Hello World", got.Title)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreatePostValidation(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	testCases := []struct {
		name        string
		req         *CreatePostRequest
		expectedErr string
	}{
		{
			name:        "missing title",
			req:         &CreatePostRequest{Content: "content", UserID: 1},
			expectedErr: "validation error: map[slug:must be provided title:must be provided]",
		},
		{
			name:        "missing user id",
			req:         &CreatePostRequest{Title: "Hello World"},
			expectedErr: "validation error: map[userId:must be greater than zero]",
		},
		{
			name:        "unsafe explicit slug",
			req:         &CreatePostRequest{Title: "Hello World", Slug: "Hello World", UserID: 1},
			expectedErr: "validation error: map[slug:must only contain lowercase letters, numbers, and hyphens]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			_, err := s.CreatePost(ctx, tc.req)
			assert.EqualError(t, err, tc.expectedErr)
		})
	}
}

func TestGetPosts(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := s.GetPosts(ctx)
	assert.NoError(t, err)
	assert.Empty(t, posts)

	_, err = s.CreatePost(ctx, testPost())
	assert.NoError(t, err)

	second := testPost()
	second.Title = "Second Post"
	_, err = s.CreatePost(ctx, second)
	assert.NoError(t, err)

	posts, err = s.GetPosts(ctx)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestDeletePostBySlug(t *testing.T) {
	db := common.TestDB("file://../../migrations", t)
	s := NewPostService(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.CreatePost(ctx, testPost())
	assert.NoError(t, err)

	err = s.DeletePostBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = s.DeletePostBySlug(ctx, "hello-world")
	assert.NoError(t, err)

	_, err = s.GetPostBySlug(ctx, "hello-world")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
