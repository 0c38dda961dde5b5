package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
	"NewsPulse/internal/prefs"
)

const (
	noteIngesting    = "Ingesting…"
	noteFetchingFeed = "Fetching your personalized feed…"
)

// FetcherDeps wires the fetch orchestration component.
type FetcherDeps struct {
	Gateway ports.Gateway
	Prefs   *prefs.Store
	Sources []string
	Logger  *slog.Logger

	// StrictOrdering upgrades the ingest/feed and digest channels from
	// last-completion-wins to last-initiated-wins: a completion is applied
	// only while its request is still the latest on its channel. Off by
	// default to preserve the historical behavior.
	StrictOrdering bool
}

// Fetcher sequences the ingest, feed and digest operations. Ingest and feed
// share one visible status channel (busy flag + note); digest has its own
// silent channel. Result state is owned exclusively by the Fetcher.
type Fetcher struct {
	gateway ports.Gateway
	prefs   *prefs.Store
	sources []string
	logger  *slog.Logger
	strict  bool

	mu        sync.Mutex
	busy      bool
	note      string
	items     []domain.StoryItem
	count     int
	digest    *domain.DigestPayload
	fetchGen  uint64
	digestGen uint64
}

// NewFetcher constructs the orchestration component.
func NewFetcher(deps FetcherDeps) *Fetcher {
	if deps.Prefs == nil {
		deps.Prefs = prefs.NewStore()
	}
	return &Fetcher{
		gateway: deps.Gateway,
		prefs:   deps.Prefs,
		sources: deps.Sources,
		logger:  deps.Logger,
		strict:  deps.StrictOrdering,
	}
}

// RefreshIngest asks the service to pull the configured raw sources. The
// shared busy flag is cleared on every outcome.
func (f *Fetcher) RefreshIngest(ctx context.Context) {
	if f.gateway == nil {
		return
	}

	snap := f.prefs.Snapshot()
	gen := f.begin(noteIngesting)

	note := "Ingest did not complete."
	defer func() { f.settle(gen, &note, nil) }()

	result, err := f.gateway.Ingest(ctx, f.sources, snap.Language)
	if err != nil {
		note = fmt.Sprintf("Ingest failed: %v", err)
		return
	}

	note = fmt.Sprintf("Ingested %d new articles.", result.Inserted)
}

// RefreshFeed fetches the personalized feed for the preferences as they are
// right now; a preference change during the call does not alter its
// arguments. On success the active item set is wholly replaced.
func (f *Fetcher) RefreshFeed(ctx context.Context) {
	if f.gateway == nil {
		return
	}

	snap := f.prefs.Snapshot()
	gen := f.begin(noteFetchingFeed)

	note := "Feed fetch did not complete."
	var apply func()
	defer func() { f.settle(gen, &note, &apply) }()

	result, err := f.gateway.FetchFeed(ctx, snap)
	if err != nil {
		note = fmt.Sprintf("Feed fetch failed: %v", err)
		return
	}

	note = fmt.Sprintf("Showing %d stories.", result.Count)
	apply = func() {
		f.items = result.Items
		f.count = result.Count
	}
}

// RefreshDigest fetches the daily aggregate on its silent channel. Failures
// keep whatever payload was loaded before; they are background refreshes,
// not user-facing errors.
func (f *Fetcher) RefreshDigest(ctx context.Context) {
	if f.gateway == nil {
		return
	}

	snap := f.prefs.Snapshot()

	f.mu.Lock()
	f.digestGen++
	gen := f.digestGen
	f.mu.Unlock()

	payload, err := f.gateway.FetchDigest(ctx, snap.Language)
	if err != nil {
		f.debug("digest refresh failed", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.strict && gen != f.digestGen {
		return
	}
	f.digest = &payload
}

// ChangeLanguage updates the preference and re-fetches the digest exactly
// once for the new language.
func (f *Fetcher) ChangeLanguage(ctx context.Context, language domain.Language) {
	f.prefs.SetLanguage(language)
	f.RefreshDigest(ctx)
}

// Status returns the shared ingest/feed channel status.
func (f *Fetcher) Status() domain.RequestStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.RequestStatus{Busy: f.busy, Note: f.note}
}

// Feed returns the currently displayed feed result in response order.
func (f *Fetcher) Feed() domain.FeedResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.FeedResult{Items: f.items, Count: f.count}
}

// Digest returns the last loaded digest payload, reporting false until the
// first successful fetch.
func (f *Fetcher) Digest() (domain.DigestPayload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.digest == nil {
		return domain.DigestPayload{}, false
	}
	return *f.digest, true
}

// begin claims the shared status channel and returns this request's
// generation token.
func (f *Fetcher) begin(note string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchGen++
	f.busy = true
	f.note = note
	return f.fetchGen
}

// settle is the terminal cleanup step for the shared channel: it always
// runs, so no outcome can leave the busy flag stuck. In strict mode a
// superseded request's completion is discarded entirely.
func (f *Fetcher) settle(gen uint64, note *string, apply *func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.strict && gen != f.fetchGen {
		return
	}
	f.busy = false
	f.note = *note
	if apply != nil && *apply != nil {
		(*apply)()
	}
}

func (f *Fetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
