// Package app assembles the service graph.
package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/config"
	"github.com/anzen-app/bosai-go/internal/constants"
	"github.com/anzen-app/bosai-go/internal/observability"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/server"
	"github.com/anzen-app/bosai-go/internal/service/ai"
	"github.com/anzen-app/bosai-go/internal/service/cache"
	"github.com/anzen-app/bosai-go/internal/service/jma"
	"github.com/anzen-app/bosai-go/internal/service/quake"
	"github.com/anzen-app/bosai-go/internal/service/shelter"
	"github.com/anzen-app/bosai-go/internal/service/translator"
	"github.com/anzen-app/bosai-go/internal/service/tsunami"
	"github.com/anzen-app/bosai-go/internal/service/volcano"
)

// Container holds the assembled services and their shutdown hooks.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	httpServer *server.Server
	closers    []func()
}

// Handler returns the fully wired HTTP handler.
func (c *Container) Handler() http.Handler {
	return c.httpServer.Handler()
}

// Close releases held resources in reverse construction order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services. Heavy initialization (cache
// backend, AI clients) happens here so main stays orchestration only.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	metrics := observability.NewMetrics()
	table := phrase.NewTable()

	var store cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		redisStore, redisErr := cache.NewRedisStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if redisErr != nil {
			return nil, fmt.Errorf("failed to create redis cache store: %w", redisErr)
		}
		store = redisStore
	default:
		store = cache.NewFileStore(cfg.Cache.File, logger)
	}
	closers = append(closers, func() {
		_ = store.Close()
	})
	cacheSvc := cache.NewService(store, logger)

	aiManager, err := ai.NewManager(ctx, ai.ManagerConfig{
		Provider:         cfg.AI.Provider,
		EnableFallback:   cfg.AI.EnableFallback,
		GeminiAPIKey:     cfg.Gemini.APIKey,
		GeminiModel:      cfg.Gemini.Model,
		OpenAIAPIKey:     cfg.OpenAI.APIKey,
		OpenAIModel:      cfg.OpenAI.Model,
		TranslateTimeout: cfg.AI.TranslateTimeout,
		GenerateTimeout:  cfg.AI.GenerateTimeout,
	}, metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI manager: %w", err)
	}

	translatorSvc := translator.NewService(table, cacheSvc, aiManager, metrics, logger)

	jmaClient := jma.NewClient(cfg.JMA.BaseURL, cfg.JMA.Timeout, table, translatorSvc, logger)
	aggregator := jma.NewAggregator(jmaClient, cfg.JMA.FetchConcurrency, metrics, logger)
	quakeSvc := quake.NewService(cfg.P2P.BaseURL, cfg.P2P.Timeout, translatorSvc, metrics, logger)
	tsunamiSvc := tsunami.NewService(cfg.JMA.BaseURL, cfg.JMA.Timeout, translatorSvc, metrics, logger)
	volcanoSvc := volcano.NewService(cfg.JMA.BaseURL+"/volcano", cfg.JMA.Timeout, constants.VolcanoConfig.FetchConcurrency, translatorSvc, metrics, logger)
	shelterSvc := shelter.NewService(cfg.Shelter.DataFile, translatorSvc, logger)

	httpServer := server.NewServer(server.Deps{
		Translator: translatorSvc,
		Warnings:   aggregator,
		Areas:      jmaClient,
		Quakes:     quakeSvc,
		Tsunamis:   tsunamiSvc,
		Volcanoes:  volcanoSvc,
		Shelters:   shelterSvc,
		AI:         aiManager,
	}, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		httpServer: httpServer,
		closers:    closers,
	}, nil
}
