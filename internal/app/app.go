// Package app assembles adapters and the core service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/moodreel/internal/adapters/huggingface"
	"github.com/ewilliams-labs/moodreel/internal/adapters/memory"
	"github.com/ewilliams-labs/moodreel/internal/adapters/null"
	"github.com/ewilliams-labs/moodreel/internal/adapters/ollama"
	"github.com/ewilliams-labs/moodreel/internal/adapters/openai"
	"github.com/ewilliams-labs/moodreel/internal/adapters/redis"
	"github.com/ewilliams-labs/moodreel/internal/adapters/rest"
	"github.com/ewilliams-labs/moodreel/internal/adapters/sqlite"
	"github.com/ewilliams-labs/moodreel/internal/config"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
	"github.com/ewilliams-labs/moodreel/internal/core/poster"
	"github.com/ewilliams-labs/moodreel/internal/core/services"
	"github.com/ewilliams-labs/moodreel/internal/logging"
	"github.com/ewilliams-labs/moodreel/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// App is a fully wired moodreel instance.
type App struct {
	Service  *services.Orchestrator
	Backends map[string]string

	cfg     *config.Config
	log     zerolog.Logger
	closers []func() error
}

// New builds the repository, capabilities and service described by cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      logging.WithComponent("app"),
		Backends: make(map[string]string),
	}

	repo, err := a.newRepository(ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := a.newClassifier(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	generator, err := a.newGenerator()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	var renderer ports.PosterRenderer = null.Renderer{}
	a.Backends["renderer"] = config.BackendNone
	if cfg.Poster.Render {
		renderer = poster.NewRenderer()
		a.Backends["renderer"] = "procedural"
	}

	pool := worker.NewPool(cfg.Concurrency * 4)
	pool.Start(cfg.Concurrency)
	a.closers = append(a.closers, pool.Stop)

	svcLog := logging.WithComponent("service")
	a.Service = services.NewOrchestrator(classifier, generator, renderer, repo, services.Options{
		Normalization:     cfg.Normalization(),
		MaxInputRunes:     cfg.Mood.MaxInputRunes,
		CapabilityTimeout: cfg.CapabilityTimeout,
		Logger:            &svcLog,
		Pool:              pool,
	})

	a.log.Info().
		Str("storage", a.Backends["storage"]).
		Str("classifier", a.Backends["classifier"]).
		Str("generator", a.Backends["generator"]).
		Str("renderer", a.Backends["renderer"]).
		Msg("moodreel wired")
	return a, nil
}

func (a *App) newRepository(ctx context.Context) (ports.SessionRepository, error) {
	a.Backends["storage"] = a.cfg.Storage.Driver

	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.NewSessionStore(), nil
	case config.DriverSQLite:
		dbAdapter, err := sqlite.NewAdapter(a.cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("app: failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, dbAdapter.Close)
		return dbAdapter, nil
	case config.DriverRedis:
		store, err := redis.NewStore(ctx, a.cfg.Storage.RedisAddr, a.cfg.Storage.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("app: failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		return nil, fmt.Errorf("app: unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) newClassifier(ctx context.Context) (ports.MoodClassifier, error) {
	b := a.cfg.Classifier
	a.Backends["classifier"] = b.Backend

	switch b.Backend {
	case config.BackendNone:
		return null.Classifier{}, nil
	case config.BackendHuggingFace:
		return huggingface.NewClient(ctx, b.BaseURL, b.Model, a.cfg.HuggingFaceToken, a.cfg.CapabilityTimeout), nil
	case config.BackendOllama:
		return ollama.NewClient(b.BaseURL, b.Model, a.cfg.CapabilityTimeout), nil
	case config.BackendOpenAI:
		return openai.NewClient(a.cfg.OpenAIKey, b.Model, b.BaseURL), nil
	default:
		return nil, fmt.Errorf("app: unknown classifier backend %q", b.Backend)
	}
}

func (a *App) newGenerator() (ports.TextGenerator, error) {
	b := a.cfg.Generator
	a.Backends["generator"] = b.Backend

	switch b.Backend {
	case config.BackendNone:
		return null.Generator{}, nil
	case config.BackendOllama:
		return ollama.NewClient(b.BaseURL, b.Model, a.cfg.CapabilityTimeout), nil
	case config.BackendOpenAI:
		return openai.NewClient(a.cfg.OpenAIKey, b.Model, b.BaseURL), nil
	default:
		return nil, fmt.Errorf("app: unknown generator backend %q", b.Backend)
	}
}

// Handler returns the HTTP interface for the service.
func (a *App) Handler() http.Handler {
	return rest.NewHandler(a.Service, rest.Options{
		AllowedOrigin: a.cfg.Server.CORSOrigin,
		Backends:      a.Backends,
	})
}

// Close releases storage connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Serve runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	a.log.Info().Str("addr", srv.Addr).Msg("🎬 moodreel API is running")

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	}
}
