package detail

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"reelview/internal/core"
	"reelview/internal/interaction"
	"reelview/internal/playback"
	"reelview/pkg/async"
)

var ErrCommentInFlight = errors.New("comment already being posted")

type Deps struct {
	Logger    *slog.Logger
	Service   core.PostService
	Session   core.Session
	Forwarder core.InteractionForwarder

	// NewPlayer creates the video element for the post's media.
	NewPlayer func(videoURL string) core.Player
}

// RenderState is everything the page needs to draw itself.
type RenderState struct {
	Empty          bool
	Post           *core.Post
	Playback       core.PlaybackState
	Affordances    playback.Affordances
	SignedIn       bool
	LikedByViewer  bool
	LikeCount      int
	Draft          string
	PostingComment bool
	Err            error
}

// View is one open detail page. A view for a missing post is empty: it renders
// nothing and ignores every intent.
type View struct {
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	playback     *playback.Controller
	interactions *interaction.Store

	closeOnce sync.Once
}

// Open fetches the post and builds its view.
func Open(ctx context.Context, deps Deps, postID string) (*View, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "detail.View", "post", postID)

	post, err := deps.Service.GetPost(ctx, postID)
	if errors.Is(err, core.ErrPostNotFound) || (err == nil && post == nil) {
		logger.Info("post not found, rendering empty view")
		return &View{logger: logger}, nil
	}
	if err != nil {
		return nil, err
	}

	viewCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	store := interaction.New(interaction.Deps{
		Logger:    deps.Logger,
		Service:   deps.Service,
		Session:   deps.Session,
		Forwarder: deps.Forwarder,
	}, post)

	v := &View{
		logger:       logger,
		ctx:          viewCtx,
		cancel:       cancel,
		playback:     playback.NewController(deps.Logger),
		interactions: store,
	}

	if deps.NewPlayer != nil {
		v.playback.Attach(deps.NewPlayer(post.VideoURL))
	}

	return v, nil
}

func (v *View) Empty() bool {
	return v.interactions == nil
}

func (v *View) ToggleVideo() {
	if v.Empty() {
		return
	}
	v.playback.TogglePlayback()
}

func (v *View) SetMuted(muted bool) {
	if v.Empty() {
		return
	}
	v.playback.SetMuted(muted)
}

func (v *View) SetHover(active bool) {
	if v.Empty() {
		return
	}
	v.playback.SetHoverActive(active)
}

func (v *View) SetDraft(text string) {
	if v.Empty() {
		return
	}
	v.interactions.SetDraft(text)
}

// Like sends the like in the background and returns immediately.
func (v *View) Like(liked bool) *async.JobHandle[any] {
	if v.Empty() {
		return async.Done[any](nil, nil)
	}

	return async.Job(v.ctx, func(ctx context.Context) (any, error) {
		err := v.interactions.SetLike(ctx, liked)
		if err != nil {
			v.logger.Warn("like failed", "liked", liked, "error", err)
		}
		return nil, err
	})
}

// SubmitComment posts the current draft in the background. It is refused
// while another comment is being posted.
func (v *View) SubmitComment() *async.JobHandle[any] {
	if v.Empty() {
		return async.Done[any](nil, nil)
	}

	release, ok := v.interactions.ReserveComment()
	if !ok {
		return async.Done[any](nil, ErrCommentInFlight)
	}

	text := v.interactions.Draft()

	return async.Job(v.ctx, func(ctx context.Context) (any, error) {
		defer release()

		err := v.interactions.SubmitComment(ctx, text)
		if err != nil {
			v.logger.Warn("comment failed", "error", err)
		}
		return nil, err
	})
}

// Dispatch runs an intent. Mutating intents return their background job.
func (v *View) Dispatch(intent Intent) *async.JobHandle[any] {
	switch intent.Kind {
	case IntentToggle:
		v.ToggleVideo()
	case IntentMute:
		v.SetMuted(true)
	case IntentUnmute:
		v.SetMuted(false)
	case IntentHover:
		v.SetHover(intent.Active)
	case IntentLike:
		return v.Like(true)
	case IntentUnlike:
		return v.Like(false)
	case IntentDraft:
		v.SetDraft(intent.Text)
	case IntentComment:
		if intent.Text != "" {
			v.SetDraft(intent.Text)
		}
		return v.SubmitComment()
	case IntentShow, IntentQuit:
	}

	return async.Done[any](nil, nil)
}

func (v *View) Render() RenderState {
	if v.Empty() {
		return RenderState{Empty: true}
	}

	post := v.interactions.Post()
	state := v.playback.State()

	return RenderState{
		Post:           post,
		Playback:       state,
		Affordances:    playback.AffordancesFor(state),
		SignedIn:       v.interactions.SignedIn(),
		LikedByViewer:  v.interactions.LikedByViewer(),
		LikeCount:      len(post.Likes),
		Draft:          v.interactions.Draft(),
		PostingComment: v.interactions.IsPostingComment(),
		Err:            v.interactions.LastError(),
	}
}

// Close tears the view down. In-flight requests are cancelled and their
// responses, if any still arrive, are ignored.
func (v *View) Close() {
	if v.Empty() {
		return
	}

	v.closeOnce.Do(func() {
		v.cancel()
		v.interactions.Close()
		v.playback.Detach()
	})
}
