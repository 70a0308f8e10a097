package config

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/taalbot/pkg/log"
)

const (
	RecencySQLite = "sqlite"
	RecencyBadger = "badger"
	RecencyFile   = "file"
)

type AppConfig struct {
	RuntimePath string `env:"TAAL_RUNTIME_PATH"`
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// Access
	AuthorizedUsers []int64 `env:"AUTHORIZED_USERS" envSeparator:","`

	// Transport Flags
	EnableTelegram bool   `env:"ENABLE_TELEGRAM" envDefault:"true"`
	EnableCLI      bool   `env:"ENABLE_CLI" envDefault:"false"`
	HealthAddr     string `env:"HEALTH_ADDR"`

	// Sessions
	HistoryCap int           `env:"HISTORY_CAP" envDefault:"10"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Recency log
	RecencyBackend    string `env:"RECENCY_BACKEND" envDefault:"sqlite"`
	RecencyWindowDays int    `env:"RECENCY_WINDOW_DAYS" envDefault:"7"`
	RecencyHintTokens int    `env:"RECENCY_HINT_TOKENS" envDefault:"600"`
	RecencyPruneDays  int    `env:"RECENCY_PRUNE_DAYS" envDefault:"0"`

	WordsFile string `env:"WORDS_FILE"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if c.RuntimePath == "" {
		c.RuntimePath = GetRuntimePath()
	}
	if c.HistoryCap < 2 {
		c.HistoryCap = 2
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "taalbot.db")
}

func (c AppConfig) GetBadgerPath() string {
	return filepath.Join(c.RuntimePath, "badger")
}

// GetMemoryPath is the legacy JSON recency document.
func (c AppConfig) GetMemoryPath() string {
	return filepath.Join(c.RuntimePath, "memory.json")
}

func (c AppConfig) GetHistoryFilePath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

// IsAuthorized reports whether userID may talk to the bot.
// An empty allow-list admits nobody.
func (c AppConfig) IsAuthorized(userID int64) bool {
	return slices.Contains(c.AuthorizedUsers, userID)
}

func (c AppConfig) GetHistoryCap() int {
	return c.HistoryCap
}

func (c AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

func (c AppConfig) GetRecencyWindowDays() int {
	return c.RecencyWindowDays
}

func (c AppConfig) GetRecencyHintTokens() int {
	return c.RecencyHintTokens
}
