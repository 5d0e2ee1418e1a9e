package core

import (
	"context"
	"errors"
)

var ErrPostNotFound = errors.New("post not found")

type LikeRequest struct {
	ViewerID string
	PostID   string
	Liked    bool
}

type CommentRequest struct {
	ViewerID string
	PostID   string
	Text     string
}

// PostService is the remote owner of posts, likes and comments.
type PostService interface {
	GetPost(ctx context.Context, id string) (*Post, error)
	SetLike(ctx context.Context, req LikeRequest) ([]string, error)
	AddComment(ctx context.Context, req CommentRequest) ([]Comment, error)
}

// Player is a handle to a video element.
type Player interface {
	Play() error
	Pause()
	SetMuted(muted bool)
}

// Session resolves the current viewer, ok is false for anonymous sessions.
type Session interface {
	Viewer() (viewer Viewer, ok bool)
}

type InteractionForwarder interface {
	Forward(ctx context.Context, interaction Interaction) error
}
