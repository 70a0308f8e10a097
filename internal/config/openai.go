package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/taalbot/pkg/log"
)

type OpenAIConfig struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	ChatModel  string `env:"OPENAI_CHAT_MODEL" envDefault:"gpt-4o"`
	CheckModel string `env:"OPENAI_CHECK_MODEL" envDefault:"gpt-4o-mini"`
	TTSModel   string `env:"OPENAI_TTS_MODEL" envDefault:"gpt-4o-mini-tts"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
