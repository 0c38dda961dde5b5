package usecase

import (
	"context"
	"sync"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

// fakeGateway implements ports.Gateway with overridable behavior per
// operation; unset operations succeed with zero-value results.
type fakeGateway struct {
	mu          sync.Mutex
	ingestFn    func(ctx context.Context, sources []string, language domain.Language) (domain.IngestResult, error)
	feedFn      func(ctx context.Context, prefs domain.Preferences) (domain.FeedResult, error)
	digestFn    func(ctx context.Context, language domain.Language) (domain.DigestPayload, error)
	audioFn     func(ctx context.Context, text string, language domain.Language) (domain.AudioResult, error)
	ingestCalls int
	feedCalls   int
	digestCalls []domain.Language
	audioCalls  []string
}

var _ ports.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) Ingest(ctx context.Context, sources []string, language domain.Language) (domain.IngestResult, error) {
	g.mu.Lock()
	g.ingestCalls++
	fn := g.ingestFn
	g.mu.Unlock()
	if fn != nil {
		return fn(ctx, sources, language)
	}
	return domain.IngestResult{}, nil
}

func (g *fakeGateway) FetchFeed(ctx context.Context, prefs domain.Preferences) (domain.FeedResult, error) {
	g.mu.Lock()
	g.feedCalls++
	fn := g.feedFn
	g.mu.Unlock()
	if fn != nil {
		return fn(ctx, prefs)
	}
	return domain.FeedResult{Items: []domain.StoryItem{}}, nil
}

func (g *fakeGateway) FetchDigest(ctx context.Context, language domain.Language) (domain.DigestPayload, error) {
	g.mu.Lock()
	g.digestCalls = append(g.digestCalls, language)
	fn := g.digestFn
	g.mu.Unlock()
	if fn != nil {
		return fn(ctx, language)
	}
	return domain.DigestPayload{}, nil
}

func (g *fakeGateway) RequestAudio(ctx context.Context, text string, language domain.Language) (domain.AudioResult, error) {
	g.mu.Lock()
	g.audioCalls = append(g.audioCalls, text)
	fn := g.audioFn
	g.mu.Unlock()
	if fn != nil {
		return fn(ctx, text, language)
	}
	return domain.AudioResult{AudioURL: "http://localhost/audio.mp3"}, nil
}

func (g *fakeGateway) digestLanguages() []domain.Language {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.Language{}, g.digestCalls...)
}

// fakePlayer implements ports.Player with controllable streams.
type fakePlayer struct {
	mu       sync.Mutex
	startErr error
	streams  []*fakeStream
}

var _ ports.Player = (*fakePlayer)(nil)

func (p *fakePlayer) Name() string { return "fake" }

func (p *fakePlayer) Start(_ context.Context, audioURL string) (ports.Playback, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.startErr != nil {
		return nil, p.startErr
	}
	stream := &fakeStream{url: audioURL, done: make(chan struct{})}
	p.streams = append(p.streams, stream)
	return stream, nil
}

func (p *fakePlayer) started() []*fakeStream {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*fakeStream{}, p.streams...)
}

type fakeStream struct {
	url  string
	done chan struct{}
}

func (s *fakeStream) Done() <-chan struct{} { return s.done }

func (s *fakeStream) finish() { close(s.done) }
