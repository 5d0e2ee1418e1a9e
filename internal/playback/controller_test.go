package playback_test

import (
	"errors"
	"sync"
	"testing"

	"reelview/internal/core"
	"reelview/internal/playback"

	"github.com/stretchr/testify/require"
)

type fakePlayer struct {
	mu       sync.Mutex
	commands []string
	muted    bool
	playErr  error
}

func (p *fakePlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playErr != nil {
		return p.playErr
	}
	p.commands = append(p.commands, "play")
	return nil
}

func (p *fakePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.commands = append(p.commands, "pause")
}

func (p *fakePlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
}

func newAttached(t *testing.T) (*playback.Controller, *fakePlayer) {
	t.Helper()

	player := &fakePlayer{}
	c := playback.NewController(nil)
	c.Attach(player)

	return c, player
}

func TestController_TogglePlayback(t *testing.T) {
	t.Parallel()

	t.Run("alternates starting from paused", func(t *testing.T) {
		t.Parallel()

		c, player := newAttached(t)
		require.False(t, c.State().Playing)

		for i := range 7 {
			state := c.TogglePlayback()
			require.Equal(t, i%2 == 0, state.Playing)
		}

		require.Equal(t, []string{"play", "pause", "play", "pause", "play", "pause", "play"}, player.commands)
	})

	t.Run("ignored without player", func(t *testing.T) {
		t.Parallel()

		c := playback.NewController(nil)

		state := c.TogglePlayback()
		require.Equal(t, core.PlaybackState{}, state)
	})

	t.Run("stays paused when play fails", func(t *testing.T) {
		t.Parallel()

		c, player := newAttached(t)
		player.playErr = errors.New("autoplay blocked")

		state := c.TogglePlayback()
		require.False(t, state.Playing)
		require.Empty(t, player.commands)
	})

	t.Run("mute is independent", func(t *testing.T) {
		t.Parallel()

		c, player := newAttached(t)

		c.SetMuted(true)
		state := c.TogglePlayback()

		require.True(t, state.Muted)
		require.True(t, state.Playing)
		require.True(t, player.muted)
	})
}

func TestController_SetMuted(t *testing.T) {
	t.Parallel()

	t.Run("propagates to player", func(t *testing.T) {
		t.Parallel()

		c, player := newAttached(t)

		c.SetMuted(true)
		require.True(t, player.muted)
		require.True(t, c.State().Muted)

		c.SetMuted(false)
		require.False(t, player.muted)
	})

	t.Run("applied on attach", func(t *testing.T) {
		t.Parallel()

		c := playback.NewController(nil)
		c.SetMuted(true)

		player := &fakePlayer{}
		c.Attach(player)

		require.True(t, player.muted)
	})
}

func TestController_Affordances(t *testing.T) {
	t.Parallel()

	c, _ := newAttached(t)

	a := c.Affordances()
	require.False(t, a.ShowPlayPause)
	require.Equal(t, playback.ButtonPlay, a.PlayPause)
	require.Equal(t, playback.ButtonMute, a.Mute)

	c.SetHoverActive(true)
	c.TogglePlayback()
	c.SetMuted(true)

	a = c.Affordances()
	require.True(t, a.ShowPlayPause)
	require.Equal(t, playback.ButtonPause, a.PlayPause)
	require.Equal(t, playback.ButtonUnmute, a.Mute)

	c.SetHoverActive(false)
	require.True(t, c.State().Playing)
	require.False(t, c.Affordances().ShowPlayPause)
}
