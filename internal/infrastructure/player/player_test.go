package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPlayerCompletesImmediately(t *testing.T) {
	t.Parallel()

	playback, err := NewNoopPlayer().Start(context.Background(), "http://localhost/a.mp3")
	require.NoError(t, err)

	select {
	case <-playback.Done():
	case <-time.After(time.Second):
		t.Fatal("noop playback never completed")
	}
}

func TestNoopPlayerRejectsEmptyURL(t *testing.T) {
	t.Parallel()

	_, err := NewNoopPlayer().Start(context.Background(), "")
	require.Error(t, err)
}

func TestExecPlayerRunsCommandToCompletion(t *testing.T) {
	t.Parallel()

	playback, err := NewExecPlayer([]string{"true"}, nil).Start(context.Background(), "http://localhost/a.mp3")
	require.NoError(t, err)

	select {
	case <-playback.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("player process never exited")
	}
}

func TestExecPlayerStartFailures(t *testing.T) {
	t.Parallel()

	_, err := NewExecPlayer(nil, nil).Start(context.Background(), "http://localhost/a.mp3")
	require.Error(t, err)

	_, err = NewExecPlayer([]string{"true"}, nil).Start(context.Background(), "")
	require.Error(t, err)

	_, err = NewExecPlayer([]string{"definitely-not-a-player-binary"}, nil).Start(context.Background(), "http://localhost/a.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start player")
}
