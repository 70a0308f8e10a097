package tutor

import (
	"context"
	"fmt"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/state"
	"github.com/sandevgo/taalbot/pkg/log"
)

func (c *Controller) startChat(st *state.State) (core.Reply, error) {
	p, err := c.render("chat", prompt.Vars{})
	if err != nil {
		st.Clear()
		return core.Reply{}, err
	}
	st.Reset(&state.Chat{History: state.NewHistory(p.System)})
	return core.Reply{Text: chatGreeting}, nil
}

func (c *Controller) startRoleplay(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	topic := a.rest("")
	if topic == "" {
		st.Clear()
		return core.Reply{}, &ValidationError{Usage: roleplayUsage}
	}

	session := &state.Roleplay{Topic: topic}
	st.Reset(session)

	p, err := c.render("roleplay", prompt.Vars{Topic: topic})
	if err != nil {
		return core.Reply{}, err
	}
	session.History = state.NewHistory(p.System)

	// the opening request is not kept, only the model's first line
	msgs := append(session.History.Messages(), core.Message{Role: core.RoleUser, Content: p.User})
	opening, err := c.complete(ctx, msgs, p.Params, "roleplay start", roleplayFailure)
	if err != nil {
		return core.Reply{}, err
	}
	session.History = session.History.Append(core.RoleAssistant, opening)

	log.FromCtx(ctx).Info().Str("topic", topic).Msg("roleplay started")
	return core.Reply{Text: fmt.Sprintf(roleplayStart, topic, opening)}, nil
}

// chatTurn runs one exchange of an open-ended conversation. The history is
// only extended when the model answered.
func (c *Controller) chatTurn(ctx context.Context, history *state.History, text string) (core.Reply, error) {
	p, err := c.render("dialogue", prompt.Vars{})
	if err != nil {
		return core.Reply{}, err
	}

	next := history.Append(core.RoleUser, text).Trim(c.historyCap)
	answer, err := c.complete(ctx, next.Messages(), p.Params, "dialogue", genericFailure)
	if err != nil {
		return core.Reply{}, err
	}

	*history = next.Append(core.RoleAssistant, answer).Trim(c.historyCap)
	return core.Reply{Text: answer}, nil
}
