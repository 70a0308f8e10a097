package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/state"
)

const defaultDictateLevel = state.LevelB1

// dictateLevel accepts a CEFR level or N for numbers. Anything else is B1.
func dictateLevel(a *args) state.Level {
	tok := a.next()
	if strings.EqualFold(tok, string(state.LevelNumbers)) {
		return state.LevelNumbers
	}
	if l, ok := state.ParseLevel(tok); ok {
		return l
	}
	return defaultDictateLevel
}

func (c *Controller) startDictate(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	level := dictateLevel(a)
	session := &state.Dictate{Level: level}
	st.Reset(session)

	d := c.draw()
	name := "dictate.sentences"
	if level == state.LevelNumbers {
		name = "dictate.numbers"
	}
	p, err := c.render(name, prompt.Vars{Level: string(level), NumberTopic: d.NumberTopic})
	if err != nil {
		return core.Reply{}, err
	}
	c.recentHint(ctx, core.KindDictate, &p)

	text, err := c.complete(ctx, p.Messages(), p.Params, "dictate", dictateFailure)
	if err != nil {
		return core.Reply{}, err
	}

	// the text is useless to the user without the audio
	audio, err := c.synthesize(ctx, text, d.Voice)
	if err != nil {
		return core.Reply{}, &GatewayError{Op: "dictate speech", Notice: dictateFailure, Err: err}
	}

	session.Reference = text
	c.remember(ctx, core.KindDictate, text)

	return core.Reply{Text: fmt.Sprintf(dictateCaption, level), Audio: audio}, nil
}

func (c *Controller) checkDictate(ctx context.Context, st *state.State, s *state.Dictate, text string) (core.Reply, error) {
	if s.Reference == "" {
		st.Clear()
		return core.Reply{}, &LostContextError{Mode: state.ModeDictate, Notice: dictateLost}
	}

	p, err := c.render("dictate.check", prompt.Vars{Original: s.Reference, Answer: text})
	if err != nil {
		return core.Reply{}, err
	}
	result, err := c.complete(ctx, p.Messages(), p.Params, "dictate check", dictateCheckFailed)
	if err != nil {
		return core.Reply{}, err
	}
	return core.Reply{Text: result}, nil
}
