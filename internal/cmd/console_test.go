package cmd

import (
	"bytes"
	"errors"
	"testing"

	"reelview/internal/core"
	"reelview/internal/detail"
	"reelview/internal/playback"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		render(&buf, detail.RenderState{Empty: true})
		require.Equal(t, "(post not found)\n", buf.String())
	})

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()

		state := core.PlaybackState{Playing: true, HoverActive: true}

		var buf bytes.Buffer
		render(&buf, detail.RenderState{
			Post: &core.Post{
				ID:       "p1",
				VideoURL: "https://cdn/v.mp4",
				Author:   core.Author{Name: "author", Verified: true},
				Caption:  "caption",
				Likes:    []string{"u1"},
				Comments: []core.Comment{{Author: "u1", Text: "nice video"}},
			},
			Playback:      state,
			Affordances:   playback.AffordancesFor(state),
			SignedIn:      true,
			LikedByViewer: true,
			LikeCount:     1,
			Draft:         "more",
			Err:           errors.New("comment failed: boom"),
		})

		require.Equal(t, "author ✓\n"+
			"caption\n"+
			"video: https://cdn/v.mp4 [playing] (pause) (mute)\n"+
			"likes: 1 (liked)\n"+
			"comments (1):\n"+
			"  u1: nice video\n"+
			"draft: more\n"+
			"error: comment failed: boom (retry the action)\n", buf.String())
	})

	t.Run("anonymous hides likes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		render(&buf, detail.RenderState{
			Post:        &core.Post{ID: "p1", Author: core.Author{Name: "author"}},
			Affordances: playback.AffordancesFor(core.PlaybackState{Muted: true}),
		})

		require.NotContains(t, buf.String(), "likes:")
		require.Contains(t, buf.String(), "[paused] (unmute)")
	})
}
