package ports

import (
	"context"
	"time"

	"NewsPulse/internal/domain"
)

// Gateway issues the four remote operations. Implementations are stateless
// request/response mappers: no retries, no caching, no component state.
type Gateway interface {
	Ingest(ctx context.Context, sources []string, language domain.Language) (domain.IngestResult, error)
	FetchFeed(ctx context.Context, prefs domain.Preferences) (domain.FeedResult, error)
	FetchDigest(ctx context.Context, language domain.Language) (domain.DigestPayload, error)
	RequestAudio(ctx context.Context, text string, language domain.Language) (domain.AudioResult, error)
}

// Playback is one running narration stream. Done is closed when the stream
// reaches its natural end.
type Playback interface {
	Done() <-chan struct{}
}

// Player starts playback of a narration resource. A start error means the
// resource is unusable; independent streams may run concurrently.
type Player interface {
	Name() string
	Start(ctx context.Context, audioURL string) (Playback, error)
}

// Scheduler drives recurring background jobs (digest auto-refresh).
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
