package core

import "context"

type AIProvider interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}

type SpeechProvider interface {
	Synthesize(ctx context.Context, text, voice string) (*Audio, error)
}
