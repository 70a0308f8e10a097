package core

import "time"

const (
	AppName          = "TaalBot"
	AppUserAgent     = "TaalBot/0.2"
	AppRepositoryURL = "https://github.com/sandevgo/taalbot"
	AppVersion       = "0.2.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DayLayout is the bucket key format of the recency log.
const DayLayout = time.DateOnly

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tier selects which configured model serves a request.
type Tier string

const (
	TierChat  Tier = "chat"
	TierCheck Tier = "check"
)

// Params are the fixed generation parameters of a single model call.
// Nil sampling fields are left to the backend default.
type Params struct {
	Tier             Tier
	MaxTokens        int
	Temperature      *float64
	TopP             *float64
	PresencePenalty  *float64
	FrequencyPenalty *float64
}

type Audio struct {
	Data     []byte
	FileName string
	MIME     string
}

// Reply is what a command or text message produces for the user.
type Reply struct {
	Text  string
	Audio *Audio
}

func (r Reply) IsEmpty() bool {
	return r.Text == "" && r.Audio == nil
}
