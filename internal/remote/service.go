package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"reelview/internal/config"
	"reelview/internal/core"
	"reelview/internal/metrics"
	"reelview/pkg/reelapi"

	"github.com/samber/lo"
	"resty.dev/v3"
)

// Service is the core.PostService backed by the post API.
type Service struct {
	Logger *slog.Logger
	Config *config.Config

	client *reelapi.Client
}

func (s *Service) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "remote.Service")

	cfg := *reelapi.DefaultConfig
	if s.Config.APIURL != "" {
		cfg.BaseURL = s.Config.APIURL
	}
	if s.Config.Timeout > 0 {
		cfg.Timeout = s.Config.Timeout
	}
	cfg.ResponseMiddlewares = []resty.ResponseMiddleware{metrics.LatencyMiddleware}

	s.client = reelapi.NewClient(&cfg)

	s.Logger.Info("Post API client configured", "url", cfg.BaseURL)
	return nil
}

func (s *Service) Shutdown(_ context.Context) error {
	return s.client.Close()
}

func (s *Service) GetPost(ctx context.Context, id string) (*core.Post, error) {
	post, err := s.client.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, reelapi.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", core.ErrPostNotFound, id)
		}
		return nil, err
	}

	return toPost(post), nil
}

func (s *Service) SetLike(ctx context.Context, req core.LikeRequest) ([]string, error) {
	likes, err := s.client.Like(ctx, req.ViewerID, req.PostID, req.Liked)
	if err != nil {
		return nil, err
	}
	return toLikes(likes), nil
}

func (s *Service) AddComment(ctx context.Context, req core.CommentRequest) ([]core.Comment, error) {
	comments, err := s.client.Comment(ctx, req.ViewerID, req.PostID, req.Text)
	if err != nil {
		return nil, err
	}
	return toComments(comments), nil
}

func toPost(p *reelapi.Post) *core.Post {
	return &core.Post{
		ID:       p.ID,
		VideoURL: p.Video.Asset.URL,
		Author: core.Author{
			ID:       p.PostedBy.Identifier(),
			Name:     p.PostedBy.UserName,
			Avatar:   p.PostedBy.Image,
			Verified: p.PostedBy.Verified,
		},
		Caption:  p.Caption,
		Likes:    toLikes(p.Likes),
		Comments: toComments(p.Comments),
	}
}

func toLikes(likes []reelapi.Ref) []string {
	return lo.Map(likes, func(like reelapi.Ref, _ int) string {
		return like.Ref
	})
}

func toComments(comments []reelapi.Comment) []core.Comment {
	return lo.Map(comments, func(c reelapi.Comment, _ int) core.Comment {
		return core.Comment{
			Author: c.PostedBy.Identifier(),
			Text:   c.Comment,
		}
	})
}
