package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/providers/llm"
	"github.com/sandevgo/taalbot/internal/providers/words"
	"github.com/sandevgo/taalbot/internal/service/command"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/recency"
	"github.com/sandevgo/taalbot/internal/service/state"
	"github.com/sandevgo/taalbot/internal/service/tutor"
	"github.com/sandevgo/taalbot/internal/storage/file"
	"github.com/sandevgo/taalbot/internal/storage/kvstore"
	"github.com/sandevgo/taalbot/internal/storage/sqlite"
	"github.com/sandevgo/taalbot/internal/transport/cli"
	"github.com/sandevgo/taalbot/internal/transport/httpapi"
	"github.com/sandevgo/taalbot/internal/transport/telegram"
	"github.com/sandevgo/taalbot/pkg/log"
	"github.com/sandevgo/taalbot/pkg/srv"
)

const (
	pruneInterval   = 24 * time.Hour
	janitorInterval = 10 * time.Minute
)

// tutorCore is everything behind the transports.
type tutorCore struct {
	router   core.CmdRouter
	recency  *recency.Store
	sessions *state.Store
	services []srv.Service
}

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}
	appCfg := config.NewAppConfig(ctx)

	c := newTutorCore(ctx, appCfg)
	services := c.services

	transports, err := initTransports(ctx, appCfg, c.router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	if appCfg.HealthAddr != "" {
		services = append(services, httpapi.NewServer(appCfg.HealthAddr, c.recency, c.sessions))
	}

	return services
}

func newTutorCore(ctx context.Context, appCfg *config.AppConfig) *tutorCore {
	logger := log.FromCtx(ctx)
	c := &tutorCore{}

	// 1. Recency log
	store, err := initRecency(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize recency log")
	}
	c.recency = store
	c.services = append(c.services, srv.NewCleanup(store.Close))
	if appCfg.RecencyPruneDays > 0 {
		c.services = append(c.services, recency.NewPruner(store, appCfg.RecencyPruneDays, pruneInterval))
	}

	// 2. Sessions
	c.sessions = state.NewStore(appCfg.GetSessionTTL())
	c.services = append(c.services, state.NewJanitor(c.sessions, janitorInterval))

	// 3. Providers
	aiProvider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}
	speech := llm.NewSpeech(ctx)

	book, err := prompt.Default()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load prompts")
	}

	list, err := words.Load(appCfg.WordsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", appCfg.WordsFile).Msg("failed to load word list")
	}
	logger.Info().Int("words", list.Len()).Msg("word list loaded")

	// 4. Tutor
	t := tutor.New(aiProvider, speech, store, book, list,
		tutor.WithHistoryCap(appCfg.GetHistoryCap()),
		tutor.WithHintLimiter(prompt.NewLimiter(appCfg.GetRecencyHintTokens(), prompt.TokenCounter())),
	)
	c.router = command.NewRouter(c.sessions, t)

	return c
}

// openRecencyRepo opens the backend selected by RECENCY_BACKEND.
func openRecencyRepo(ctx context.Context, cfg *config.AppConfig) (core.RecencyRepository, error) {
	switch cfg.RecencyBackend {
	case config.RecencySQLite:
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, err
		}
		return sqlite.NewRecencyRepo(db), nil
	case config.RecencyBadger:
		return kvstore.NewRecencyRepo(cfg.GetBadgerPath())
	case config.RecencyFile:
		return file.NewRecencyRepo(cfg.GetMemoryPath())
	default:
		return nil, fmt.Errorf("unknown recency backend: %s", cfg.RecencyBackend)
	}
}

func initRecency(ctx context.Context, cfg *config.AppConfig) (*recency.Store, error) {
	repo, err := openRecencyRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.FromCtx(ctx).Info().Str("backend", cfg.RecencyBackend).Msg("recency log opened")
	return recency.New(repo, cfg.GetRecencyWindowDays()), nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig, router core.CmdRouter) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		if len(cfg.AuthorizedUsers) == 0 {
			log.FromCtx(ctx).Warn().Msg("AUTHORIZED_USERS is empty, every Telegram user will be refused")
		}
		bot, err := telegram.NewBot(ctx, tgCfg, cfg, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	if len(services) == 0 {
		return nil, fmt.Errorf("no transport enabled: set ENABLE_TELEGRAM or ENABLE_CLI")
	}
	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
