package interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"reelview/internal/core"
	"reelview/internal/metrics"
)

var (
	ErrLikeFailed    = errors.New("like failed")
	ErrCommentFailed = errors.New("comment failed")
	ErrClosed        = errors.New("interaction store closed")
)

type Deps struct {
	Logger    *slog.Logger
	Service   core.PostService
	Session   core.Session
	Forwarder core.InteractionForwarder
}

// Store holds the post snapshot of a detail view and applies likes and
// comments to it. The snapshot is only ever replaced with collections returned
// by the post service; nothing is guessed locally.
type Store struct {
	logger    *slog.Logger
	service   core.PostService
	session   core.Session
	forwarder core.InteractionForwarder

	mu              sync.Mutex
	post            *core.Post
	draft           string
	pendingComments int
	likeSeq         uint64
	lastErr         error
	closed          bool
}

// New builds a store over a copy of post. A nil post yields a closed store
// that refuses every mutation.
func New(deps Deps, post *core.Post) *Store {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	closed := post == nil
	if closed {
		post = &core.Post{}
	}

	return &Store{
		logger:    logger.With("component", "interaction.Store", "post", post.ID),
		service:   deps.Service,
		session:   deps.Session,
		forwarder: deps.Forwarder,
		post:      post.Clone(),
		closed:    closed,
	}
}

// SetLike asks the service to like or unlike the post on behalf of the viewer.
// Anonymous calls are ignored. Only the response of the most recent like
// request is applied.
func (s *Store) SetLike(ctx context.Context, liked bool) error {
	viewer, ok := s.viewer()
	if !ok {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.likeSeq++
	seq := s.likeSeq
	postID := s.post.ID
	s.mu.Unlock()

	likes, err := s.service.SetLike(ctx, core.LikeRequest{
		ViewerID: viewer.ID,
		PostID:   postID,
		Liked:    liked,
	})

	s.mu.Lock()
	applied, err := s.finishLike(seq, likes, err)
	s.mu.Unlock()

	if applied {
		kind := core.InteractionUnlike
		if liked {
			kind = core.InteractionLike
		}
		s.forward(ctx, core.Interaction{Kind: kind, PostID: postID, ViewerID: viewer.ID})
	}

	return err
}

func (s *Store) finishLike(seq uint64, likes []string, err error) (bool, error) {
	if s.closed {
		s.logger.Debug("like response after close dropped")
		return false, nil
	}

	if seq != s.likeSeq {
		metrics.ObserveMutation(metrics.ActionLike, metrics.OutcomeStale)
		s.logger.Debug("stale like response dropped", "seq", seq, "latest", s.likeSeq)
		return false, nil
	}

	if err != nil {
		metrics.ObserveMutation(metrics.ActionLike, metrics.OutcomeFailed)
		s.lastErr = fmt.Errorf("%w: %w", ErrLikeFailed, err)
		return false, s.lastErr
	}

	metrics.ObserveMutation(metrics.ActionLike, metrics.OutcomeApplied)
	s.post = s.post.WithLikes(likes)
	s.lastErr = nil

	return true, nil
}

// SubmitComment appends text to the post's comments. Anonymous calls and empty
// text are ignored.
func (s *Store) SubmitComment(ctx context.Context, text string) error {
	viewer, ok := s.viewer()
	if !ok || text == "" {
		return nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.pendingComments++
	postID := s.post.ID
	s.mu.Unlock()

	comments, err := s.service.AddComment(ctx, core.CommentRequest{
		ViewerID: viewer.ID,
		PostID:   postID,
		Text:     text,
	})

	s.mu.Lock()
	applied, err := s.finishComment(text, comments, err)
	s.mu.Unlock()

	if applied {
		s.forward(ctx, core.Interaction{Kind: core.InteractionComment, PostID: postID, ViewerID: viewer.ID, Text: text})
	}

	return err
}

func (s *Store) finishComment(text string, comments []core.Comment, err error) (bool, error) {
	s.pendingComments--

	if s.closed {
		s.logger.Debug("comment response after close dropped")
		return false, nil
	}

	if err != nil {
		metrics.ObserveMutation(metrics.ActionComment, metrics.OutcomeFailed)
		s.lastErr = fmt.Errorf("%w: %w", ErrCommentFailed, err)
		return false, s.lastErr
	}

	metrics.ObserveMutation(metrics.ActionComment, metrics.OutcomeApplied)
	s.post = s.post.WithComments(comments)
	if s.draft == text {
		s.draft = ""
	}
	s.lastErr = nil

	return true, nil
}

// ReserveComment marks a comment as being posted before its request starts.
// It fails while another comment is in flight. release is safe to call more
// than once.
func (s *Store) ReserveComment() (release func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingComments > 0 {
		return func() {}, false
	}
	s.pendingComments++

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			s.pendingComments--
		})
	}, true
}

// SubmitDraft submits the pending comment input.
func (s *Store) SubmitDraft(ctx context.Context) error {
	return s.SubmitComment(ctx, s.Draft())
}

func (s *Store) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = text
}

func (s *Store) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draft
}

// IsPostingComment reports whether a comment request is in flight. Callers are
// expected to hold back resubmission while it is true.
func (s *Store) IsPostingComment() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pendingComments > 0
}

func (s *Store) Post() *core.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.post.Clone()
}

// SignedIn reports whether mutations would be sent on behalf of a viewer.
func (s *Store) SignedIn() bool {
	_, ok := s.viewer()
	return ok
}

func (s *Store) LikedByViewer() bool {
	viewer, ok := s.viewer()
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.post.LikedBy(viewer.ID)
}

// LastError returns the failure of the latest mutation, nil once a later
// mutation succeeded or the error was cleared.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = nil
}

// Close detaches the store from its view. Responses that arrive afterwards are
// dropped.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

func (s *Store) viewer() (core.Viewer, bool) {
	if s.session == nil {
		return core.Viewer{}, false
	}

	viewer, ok := s.session.Viewer()
	if !ok || viewer.ID == "" {
		return core.Viewer{}, false
	}
	return viewer, true
}

func (s *Store) forward(ctx context.Context, interaction core.Interaction) {
	if s.forwarder == nil {
		return
	}

	interaction.At = time.Now()

	if err := s.forwarder.Forward(ctx, interaction); err != nil {
		s.logger.Warn("failed to forward interaction", "kind", interaction.Kind, "error", err)
	}
}
