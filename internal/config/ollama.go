package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/taalbot/pkg/log"
)

type OllamaConfig struct {
	BaseURL    string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	APIKey     string `env:"OLLAMA_API_KEY"`
	ChatModel  string `env:"OLLAMA_CHAT_MODEL" envDefault:"llama3.1"`
	CheckModel string `env:"OLLAMA_CHECK_MODEL" envDefault:"llama3.1"`
}

func NewOllamaConfig(ctx context.Context) *OllamaConfig {
	c := &OllamaConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Ollama config")
	}
	return c
}
