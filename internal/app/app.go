package app

import (
	"context"
	"log/slog"

	"NewsPulse/internal/config"
	"NewsPulse/internal/infrastructure/newsapi"
	"NewsPulse/internal/infrastructure/player"
	"NewsPulse/internal/infrastructure/scheduler"
	"NewsPulse/internal/logging"
	"NewsPulse/internal/playback"
	"NewsPulse/internal/prefs"
	"NewsPulse/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration. A
// presentation layer embeds it and drives the exposed components on user
// events.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	prefs     *prefs.Store
	fetcher   *usecase.Fetcher
	audio     *usecase.AudioCoordinator
	refresher *usecase.DigestRefresher
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	store := prefs.NewStore()
	gateway := newsapi.NewClient(cfg.Service.BaseURL, cfg.Service.RequestTimeout,
		baseLogger.With("component", "gateway"))

	registry := playback.NewRegistry()
	registry.Register(player.NewNoopPlayer())
	registry.Register(player.NewExecPlayer(cfg.Playback.Command, baseLogger.With("component", "player.exec")))

	backend, err := registry.Resolve(cfg.Playback.Backend)
	if err != nil {
		baseLogger.Warn("unknown playback backend, narration is silent",
			"backend", cfg.Playback.Backend)
		backend = player.NewNoopPlayer()
	}

	fetcher := usecase.NewFetcher(usecase.FetcherDeps{
		Gateway: gateway,
		Prefs:   store,
		Sources: cfg.Sources,
		Logger:  baseLogger.With("component", "fetcher"),
	})

	audio := usecase.NewAudioCoordinator(usecase.AudioDeps{
		Gateway: gateway,
		Player:  backend,
		Prefs:   store,
		Logger:  baseLogger.With("component", "audio"),
	})

	refresher := usecase.NewDigestRefresher(
		scheduler.NewCronScheduler(cfg.Digest.CronExpression, cfg.Digest.Location()),
		fetcher)

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		prefs:     store,
		fetcher:   fetcher,
		audio:     audio,
		refresher: refresher,
	}
}

// Prefs exposes the preference store for the presentation layer.
func (a *Application) Prefs() *prefs.Store {
	return a.prefs
}

// Fetcher exposes the fetch orchestrator for the presentation layer.
func (a *Application) Fetcher() *usecase.Fetcher {
	return a.fetcher
}

// Audio exposes the narration coordinator for the presentation layer.
func (a *Application) Audio() *usecase.AudioCoordinator {
	return a.audio
}

// Run loads the startup digest, performs an initial feed fetch and keeps the
// digest auto-refresh running until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if a.fetcher == nil {
		return nil
	}

	a.fetcher.RefreshDigest(ctx)

	if a.refresher != nil {
		if err := a.refresher.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = a.refresher.Stop(context.Background()) }()
	}

	a.fetcher.RefreshFeed(ctx)

	status := a.fetcher.Status()
	a.logger.Info("session ready", "note", status.Note, "stories", a.fetcher.Feed().Count)

	<-ctx.Done()
	return nil
}
