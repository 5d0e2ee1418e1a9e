package reelapi

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	postPath = "/api/post/{id}"
	likePath = "/api/like"
)

// GetPost fetches a single post with its likes and expanded comments.
// The backend answers a missing post either with 404 or with an empty body.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	res, err := c.r(ctx).
		SetPathParam("id", id).
		SetResult(&Post{}).
		Get(postPath)
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}

	post, ok := res.Result().(*Post)
	if !ok || post == nil || post.ID == "" {
		return nil, fmt.Errorf("%w: post %s", ErrNotFound, id)
	}

	return post, nil
}

type likeRequest struct {
	UserID string `json:"userId"`
	PostID string `json:"postId"`
	Like   bool   `json:"like"`
}

// Like adds (like=true) or removes the user's like and returns the post's
// likes as stored after the update.
func (c *Client) Like(ctx context.Context, userID, postID string, like bool) ([]Ref, error) {
	res, err := c.r(ctx).
		SetBody(likeRequest{UserID: userID, PostID: postID, Like: like}).
		SetResult(&Post{}).
		Put(likePath)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}

	return res.Result().(*Post).Likes, nil
}

type commentRequest struct {
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
}

// Comment appends a comment to the post and returns all of its comments.
func (c *Client) Comment(ctx context.Context, userID, postID, comment string) ([]Comment, error) {
	res, err := c.r(ctx).
		SetPathParam("id", postID).
		SetBody(commentRequest{UserID: userID, Comment: comment}).
		SetResult(&Post{}).
		Put(postPath)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}

	return res.Result().(*Post).Comments, nil
}
