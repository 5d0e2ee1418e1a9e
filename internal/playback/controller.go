package playback

import (
	"log/slog"
	"sync"

	"reelview/internal/core"
)

type Button string

const (
	ButtonPlay   Button = "play"
	ButtonPause  Button = "pause"
	ButtonMute   Button = "mute"
	ButtonUnmute Button = "unmute"
)

// Affordances describes which playback controls are visible and what they show.
type Affordances struct {
	ShowPlayPause bool
	PlayPause     Button
	Mute          Button
}

// Controller keeps the play/mute flags of a video element in sync with the
// commands issued to it. The element stays the source of truth: flags only
// change when the matching command was delivered.
type Controller struct {
	logger *slog.Logger

	mu     sync.Mutex
	player core.Player
	state  core.PlaybackState
}

func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		logger: logger.With("component", "playback.Controller"),
	}
}

// Attach binds the video element and pushes the current mute flag to it.
func (c *Controller) Attach(player core.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.player = player
	if player != nil {
		player.SetMuted(c.state.Muted)
	}
}

func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.player = nil
}

// TogglePlayback pauses a playing video and plays a paused one. Without an
// attached element the call is ignored.
func (c *Controller) TogglePlayback() core.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player == nil {
		c.logger.Debug("toggle ignored, no player attached")
		return c.state
	}

	if c.state.Playing {
		c.player.Pause()
		c.state.Playing = false
		return c.state
	}

	if err := c.player.Play(); err != nil {
		c.logger.Warn("failed to start playback", "error", err)
		return c.state
	}
	c.state.Playing = true

	return c.state
}

func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Muted = muted
	if c.player != nil {
		c.player.SetMuted(muted)
	}
}

func (c *Controller) SetHoverActive(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.HoverActive = active
}

func (c *Controller) State() core.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller) Affordances() Affordances {
	return AffordancesFor(c.State())
}

func AffordancesFor(state core.PlaybackState) Affordances {
	a := Affordances{
		ShowPlayPause: state.HoverActive,
		PlayPause:     ButtonPlay,
		Mute:          ButtonMute,
	}
	if state.Playing {
		a.PlayPause = ButtonPause
	}
	if state.Muted {
		a.Mute = ButtonUnmute
	}
	return a
}
