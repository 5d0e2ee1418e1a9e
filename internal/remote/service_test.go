package remote_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reelview/internal/config"
	"reelview/internal/core"
	"reelview/internal/remote"
	"reelview/pkg/reelapi"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, h http.HandlerFunc) *remote.Service {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	s := &remote.Service{
		Logger: slog.Default(),
		Config: &config.Config{APIURL: srv.URL, Timeout: time.Second},
	}
	require.NoError(t, s.Init(t.Context()))
	t.Cleanup(func() { require.NoError(t, s.Shutdown(t.Context())) })

	return s
}

func respond(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestService_GetPost(t *testing.T) {
	t.Parallel()

	t.Run("maps the document", func(t *testing.T) {
		t.Parallel()

		s := newService(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(t, w, http.StatusOK, reelapi.Post{
				ID:       "p1",
				Caption:  "caption",
				Video:    reelapi.Video{Asset: reelapi.Asset{URL: "https://cdn/v.mp4"}},
				PostedBy: reelapi.User{ID: "u9", UserName: "author", Image: "https://cdn/a.png", Verified: true},
				Likes:    []reelapi.Ref{{Key: "k1", Ref: "u1"}, {Key: "k2", Ref: "u2"}},
				Comments: []reelapi.Comment{
					{Key: "c1", Comment: "first", PostedBy: reelapi.User{ID: "u1", UserName: "one"}},
					{Key: "c2", Comment: "second", PostedBy: reelapi.User{Ref: "u2"}},
				},
			})
		})

		post, err := s.GetPost(t.Context(), "p1")
		require.NoError(t, err)
		require.Equal(t, &core.Post{
			ID:       "p1",
			VideoURL: "https://cdn/v.mp4",
			Author:   core.Author{ID: "u9", Name: "author", Avatar: "https://cdn/a.png", Verified: true},
			Caption:  "caption",
			Likes:    []string{"u1", "u2"},
			Comments: []core.Comment{{Author: "u1", Text: "first"}, {Author: "u2", Text: "second"}},
		}, post)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()

		s := newService(t, func(w http.ResponseWriter, _ *http.Request) {
			respond(t, w, http.StatusNotFound, map[string]string{})
		})

		_, err := s.GetPost(t.Context(), "nope")
		require.ErrorIs(t, err, core.ErrPostNotFound)
	})
}

func TestService_Mutations(t *testing.T) {
	t.Parallel()

	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/like":
			respond(t, w, http.StatusOK, reelapi.Post{ID: "p1", Likes: []reelapi.Ref{{Ref: "u1"}}})
		case "/api/post/p1":
			respond(t, w, http.StatusOK, reelapi.Post{ID: "p1", Comments: []reelapi.Comment{
				{Comment: "nice video", PostedBy: reelapi.User{Ref: "u1"}},
			}})
		default:
			http.NotFound(w, r)
		}
	})

	likes, err := s.SetLike(t.Context(), core.LikeRequest{ViewerID: "u1", PostID: "p1", Liked: true})
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, likes)

	comments, err := s.AddComment(t.Context(), core.CommentRequest{ViewerID: "u1", PostID: "p1", Text: "nice video"})
	require.NoError(t, err)
	require.Equal(t, []core.Comment{{Author: "u1", Text: "nice video"}}, comments)
}
