package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/state"
	"github.com/sandevgo/taalbot/pkg/log"
)

const (
	defaultPracticeLevel   = state.LevelB2
	defaultPracticeSubMode = state.SubModePrep
	defaultPracticeItem    = "aan"
)

func (c *Controller) startPractice(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	level, subMode, item := defaultPracticeLevel, defaultPracticeSubMode, defaultPracticeItem
	if !a.empty() {
		if l, ok := a.level(); ok {
			level = l
		}
		m, ok := a.subMode()
		if !ok {
			st.Clear()
			return core.Reply{}, &ValidationError{Usage: practiceUsage}
		}
		subMode = m
		item = a.rest("")
	}

	session := &state.Practice{Level: level, SubMode: subMode}
	st.Reset(session)

	if item == "" {
		picked, err := c.selectItem(ctx, level, subMode)
		if err != nil {
			return core.Reply{}, err
		}
		item = picked
	}
	session.Item = item

	vars := prompt.Vars{Level: string(level), SubMode: string(subMode), Item: item}
	sys, err := c.render("practice", vars)
	if err != nil {
		return core.Reply{}, err
	}
	gen, err := c.render("practice."+string(subMode), vars)
	if err != nil {
		return core.Reply{}, err
	}

	history := state.NewHistory(sys.System).Append(core.RoleUser, gen.User)
	sentences, err := c.complete(ctx, history.Messages(), gen.Params, "practice start", practiceFailure)
	if err != nil {
		return core.Reply{}, err
	}

	session.Sentences = sentences
	session.History = history.Append(core.RoleAssistant, sentences).Trim(c.historyCap)

	log.FromCtx(ctx).Info().
		Str("sub_mode", string(subMode)).
		Str("item", item).
		Msg("practice started")

	return core.Reply{Text: fmt.Sprintf(practiceStart, subMode, level, item, sentences)}, nil
}

// selectItem asks the model for a common item when the user named none.
func (c *Controller) selectItem(ctx context.Context, level state.Level, subMode state.SubMode) (string, error) {
	p, err := c.render("practice.select", prompt.Vars{Level: string(level), SubMode: string(subMode)})
	if err != nil {
		return "", err
	}
	item, err := c.complete(ctx, p.Messages(), p.Params, "practice select", practiceFailure)
	if err != nil {
		return "", err
	}
	item = strings.Trim(strings.TrimSpace(item), `"'.`)
	if item == "" {
		return defaultPracticeItem, nil
	}
	return item, nil
}

func (c *Controller) morePractice(ctx context.Context, st *state.State) (core.Reply, error) {
	s, ok := st.Session.(*state.Practice)
	if !ok {
		return core.Reply{}, &ValidationError{Usage: practiceNotActive}
	}
	if s.Item == "" || len(s.History) == 0 {
		st.Clear()
		return core.Reply{}, &LostContextError{Mode: state.ModePractice, Notice: practiceLost}
	}

	p, err := c.render("practice.more", prompt.Vars{
		Level:   string(s.Level),
		SubMode: string(s.SubMode),
		Item:    s.Item,
	})
	if err != nil {
		return core.Reply{}, err
	}

	next := s.History.Append(core.RoleUser, p.User).Trim(c.historyCap)
	sentences, err := c.complete(ctx, next.Messages(), p.Params, "practice more", practiceMoreFailure)
	if err != nil {
		return core.Reply{}, err
	}

	s.Sentences = sentences
	s.History = next.Append(core.RoleAssistant, sentences).Trim(c.historyCap)

	return core.Reply{Text: fmt.Sprintf(practiceMore, s.SubMode, s.Level, s.Item, sentences)}, nil
}

// checkPractice evaluates a translation of the current sentences. The
// feedback instruction goes to the model but is not kept in the history.
func (c *Controller) checkPractice(ctx context.Context, st *state.State, s *state.Practice, text string) (core.Reply, error) {
	if s.Sentences == "" || len(s.History) == 0 {
		st.Clear()
		return core.Reply{}, &LostContextError{Mode: state.ModePractice, Notice: practiceLost}
	}

	vars := prompt.Vars{
		Level:    string(s.Level),
		SubMode:  string(s.SubMode),
		Item:     s.Item,
		Original: s.Sentences,
		Answer:   text,
	}
	answer, err := c.render("practice.answer", vars)
	if err != nil {
		return core.Reply{}, err
	}
	feedback, err := c.render("practice.feedback", vars)
	if err != nil {
		return core.Reply{}, err
	}

	next := s.History.Append(core.RoleUser, answer.User).Trim(c.historyCap)
	msgs := append(next.Messages(), core.Message{Role: core.RoleUser, Content: feedback.User})

	reply, err := c.complete(ctx, msgs, feedback.Params, "practice check", practiceCheckFailed)
	if err != nil {
		return core.Reply{}, err
	}
	s.History = next.Append(core.RoleAssistant, reply).Trim(c.historyCap)

	return core.Reply{Text: reply}, nil
}
