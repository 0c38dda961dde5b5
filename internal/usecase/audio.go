package usecase

import (
	"context"
	"log/slog"
	"sync"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/narration"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/prefs"
)

// AudioDeps wires the narration playback coordinator.
type AudioDeps struct {
	Gateway ports.Gateway
	Player  ports.Player
	Prefs   *prefs.Store
	Logger  *slog.Logger
}

// AudioCoordinator tracks narration state per story. Each story's entry is
// created lazily on its first play request, lives for the session, and is
// touched only by operations keyed on that story. Every request carries a
// per-story generation token so a superseded request's late result never
// clobbers a newer one; there is no true cancellation.
type AudioCoordinator struct {
	gateway ports.Gateway
	player  ports.Player
	prefs   *prefs.Store
	logger  *slog.Logger

	mu     sync.Mutex
	states map[string]domain.AudioState
	gens   map[string]uint64
}

// NewAudioCoordinator constructs the coordinator.
func NewAudioCoordinator(deps AudioDeps) *AudioCoordinator {
	if deps.Prefs == nil {
		deps.Prefs = prefs.NewStore()
	}
	return &AudioCoordinator{
		gateway: deps.Gateway,
		player:  deps.Player,
		prefs:   deps.Prefs,
		logger:  deps.Logger,
		states:  map[string]domain.AudioState{},
		gens:    map[string]uint64{},
	}
}

// PlayStory narrates a feed story: title, bullets and impact line.
func (a *AudioCoordinator) PlayStory(ctx context.Context, story domain.StoryItem) {
	a.Play(ctx, story.Key(), narration.Script(story))
}

// Play requests narration audio for the given key and drives playback. A new
// request always supersedes whatever state existed for that key, including a
// prior error or a still-playing instance. Failures surface only as that
// key's error state; nothing propagates past the coordinator.
func (a *AudioCoordinator) Play(ctx context.Context, key, text string) {
	if a.gateway == nil || a.player == nil {
		return
	}

	snap := a.prefs.Snapshot()
	gen := a.supersede(key)

	result, err := a.gateway.RequestAudio(ctx, text, snap.Language)
	if err != nil {
		a.debug("narration request failed", "key", key, "error", err)
		a.transition(key, gen, domain.AudioError)
		return
	}

	if a.stale(key, gen) {
		// Superseded while the request was in flight; discard the late
		// result without starting playback.
		return
	}

	playback, err := a.player.Start(ctx, result.AudioURL)
	if err != nil {
		a.debug("playback start failed", "key", key, "error", err)
		a.transition(key, gen, domain.AudioError)
		return
	}

	if !a.transition(key, gen, domain.AudioPlaying) {
		// Superseded between the staleness check and playback start; the
		// stream is left to run out on its own.
		return
	}

	go func() {
		<-playback.Done()
		a.transition(key, gen, domain.AudioIdle)
	}()
}

// State returns the recorded narration state for the key, idle if the key
// was never played.
func (a *AudioCoordinator) State(key string) domain.AudioState {
	a.mu.Lock()
	defer a.mu.Unlock()
	if state, ok := a.states[key]; ok {
		return state
	}
	return domain.AudioIdle
}

// States returns a copy of every recorded entry.
func (a *AudioCoordinator) States() map[string]domain.AudioState {
	a.mu.Lock()
	defer a.mu.Unlock()
	copied := make(map[string]domain.AudioState, len(a.states))
	for key, state := range a.states {
		copied[key] = state
	}
	return copied
}

// supersede marks a fresh request for the key: the state goes to loading and
// the key's generation advances so older in-flight requests turn stale.
func (a *AudioCoordinator) supersede(key string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gens[key]++
	a.states[key] = domain.AudioLoading
	return a.gens[key]
}

// stale reports whether a newer request for the key has superseded gen.
func (a *AudioCoordinator) stale(key string, gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gens[key] != gen
}

// transition applies the state only while gen is still the key's latest
// request; stale completions are discarded.
func (a *AudioCoordinator) transition(key string, gen uint64, next domain.AudioState) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gens[key] != gen {
		return false
	}
	a.states[key] = next
	return true
}

func (a *AudioCoordinator) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
