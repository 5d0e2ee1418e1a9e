package playback

import (
	"log/slog"
	"sync"
)

// LogPlayer is a player without a screen: it records the commands it receives
// and reports them through the logger.
type LogPlayer struct {
	logger *slog.Logger

	mu      sync.Mutex
	playing bool
	muted   bool
}

func NewLogPlayer(logger *slog.Logger, url string) *LogPlayer {
	return &LogPlayer{
		logger: logger.With("component", "playback.LogPlayer", "url", url),
	}
}

func (p *LogPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = true
	p.logger.Info("play")
	return nil
}

func (p *LogPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	p.logger.Info("pause")
}

func (p *LogPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	p.logger.Debug("mute", "muted", muted)
}

func (p *LogPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing
}

func (p *LogPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.muted
}
