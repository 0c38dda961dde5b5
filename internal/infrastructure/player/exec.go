package player

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"NewsPulse/internal/ports"
)

// ExecPlayer plays a narration resource by handing its URL to an external
// player command (ffplay, mpv, …). Each Start spawns an independent process,
// so concurrent streams do not share anything.
type ExecPlayer struct {
	command []string
	logger  *slog.Logger
}

var _ ports.Player = (*ExecPlayer)(nil)

// NewExecPlayer wires the configured player command line.
func NewExecPlayer(command []string, logger *slog.Logger) *ExecPlayer {
	return &ExecPlayer{command: command, logger: logger}
}

// Name identifies the backend inside the registry.
func (p *ExecPlayer) Name() string {
	return "exec"
}

// Start launches the player process with the audio URL appended to the
// configured command. The returned playback completes when the process
// exits.
func (p *ExecPlayer) Start(ctx context.Context, audioURL string) (ports.Playback, error) {
	if len(p.command) == 0 {
		return nil, fmt.Errorf("playback command not configured")
	}
	if audioURL == "" {
		return nil, fmt.Errorf("empty audio url")
	}

	args := append(append([]string{}, p.command[1:]...), audioURL)
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start player %s: %w", p.command[0], err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil && p.logger != nil {
			p.logger.Debug("player process exited", "error", err)
		}
	}()

	return stream{done: done}, nil
}

type stream struct {
	done chan struct{}
}

func (s stream) Done() <-chan struct{} {
	return s.done
}
