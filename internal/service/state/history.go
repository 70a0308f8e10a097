package state

import "github.com/sandevgo/taalbot/internal/core"

// History is a conversation whose first message is the system instruction.
type History []core.Message

func NewHistory(system string) History {
	return History{{Role: core.RoleSystem, Content: system}}
}

func (h History) Append(role, content string) History {
	return append(h, core.Message{Role: role, Content: content})
}

// Trim keeps the system instruction plus the newest cap-1 messages.
func (h History) Trim(cap int) History {
	if cap < 2 || len(h) <= cap {
		return h
	}
	trimmed := make(History, 0, cap)
	trimmed = append(trimmed, h[0])
	trimmed = append(trimmed, h[len(h)-(cap-1):]...)
	return trimmed
}

// Messages returns a copy safe to extend without touching the history.
func (h History) Messages() []core.Message {
	out := make([]core.Message, len(h))
	copy(out, h)
	return out
}
