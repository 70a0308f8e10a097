package llm

import (
	"github.com/sandevgo/taalbot/internal/config"
)

type Ollama struct {
	*OpenAICompatible
}

func NewOllama(cfg *config.OllamaConfig) *Ollama {
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			ChatModel:  cfg.ChatModel,
			CheckModel: cfg.CheckModel,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}
