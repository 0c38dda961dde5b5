package player

import (
	"context"
	"fmt"

	"NewsPulse/internal/ports"
)

// NoopPlayer accepts any narration resource and completes immediately. Used
// for headless runs and as the fallback backend.
type NoopPlayer struct{}

var _ ports.Player = (*NoopPlayer)(nil)

// NewNoopPlayer builds the silent backend.
func NewNoopPlayer() *NoopPlayer {
	return &NoopPlayer{}
}

// Name identifies the backend inside the registry.
func (p *NoopPlayer) Name() string {
	return "noop"
}

// Start succeeds for any non-empty URL with an already-completed playback.
func (p *NoopPlayer) Start(_ context.Context, audioURL string) (ports.Playback, error) {
	if audioURL == "" {
		return nil, fmt.Errorf("empty audio url")
	}
	done := make(chan struct{})
	close(done)
	return stream{done: done}, nil
}
