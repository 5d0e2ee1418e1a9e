package core

import (
	"slices"
	"time"
)

type Author struct {
	ID       string
	Name     string
	Avatar   string
	Verified bool
}

type Comment struct {
	Author string
	Text   string
}

// Post is the locally cached snapshot of a remote post. Likes and Comments are
// only ever replaced with collections returned by the post service.
type Post struct {
	ID       string
	VideoURL string
	Author   Author
	Caption  string
	Likes    []string
	Comments []Comment
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}

	c := *p
	c.Likes = slices.Clone(p.Likes)
	c.Comments = slices.Clone(p.Comments)

	return &c
}

func (p *Post) WithLikes(likes []string) *Post {
	c := p.Clone()
	c.Likes = slices.Clone(likes)
	return c
}

func (p *Post) WithComments(comments []Comment) *Post {
	c := p.Clone()
	c.Comments = slices.Clone(comments)
	return c
}

func (p *Post) LikedBy(viewerID string) bool {
	return viewerID != "" && slices.Contains(p.Likes, viewerID)
}

type Viewer struct {
	ID       string
	UserName string
	Image    string
}

type PlaybackState struct {
	Playing     bool
	Muted       bool
	HoverActive bool
}

type InteractionKind string

const (
	InteractionLike    InteractionKind = "like"
	InteractionUnlike  InteractionKind = "unlike"
	InteractionComment InteractionKind = "comment"
)

// Interaction is a server-confirmed mutation made by a viewer.
type Interaction struct {
	Kind     InteractionKind `json:"kind"`
	PostID   string          `json:"postId"`
	ViewerID string          `json:"viewerId"`
	Text     string          `json:"text,omitempty"`
	At       time.Time       `json:"at"`
}
