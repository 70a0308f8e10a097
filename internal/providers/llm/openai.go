package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/core"
)

// OpenAI adds speech synthesis to the chat completions client.
type OpenAI struct {
	*OpenAICompatible
	ttsModel string
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	return &OpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			ChatModel:  cfg.ChatModel,
			CheckModel: cfg.CheckModel,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
		ttsModel: cfg.TTSModel,
	}
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

func (o *OpenAI) Synthesize(ctx context.Context, text, voice string) (*core.Audio, error) {
	payload := speechRequest{
		Model:          o.ttsModel,
		Voice:          voice,
		Input:          text,
		ResponseFormat: "mp3",
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/audio/speech", payload, o.headers())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio")
	}

	return &core.Audio{
		Data:     data,
		FileName: voice + ".mp3",
		MIME:     "audio/mpeg",
	}, nil
}
