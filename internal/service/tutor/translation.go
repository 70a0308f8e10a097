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
	defaultTranslationLevel = state.LevelB1
	defaultTranslationStyle = state.StyleLearning
	defaultTranslationTopic = "general"
)

func (c *Controller) startTranslation(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	level, ok := a.level()
	if !ok {
		level = defaultTranslationLevel
	}
	style, ok := a.style()
	if !ok {
		style = defaultTranslationStyle
	}
	topic := a.rest(defaultTranslationTopic)

	session := &state.Translation{Level: level, Style: style, Topic: topic}
	st.Reset(session)

	d := c.draw()
	name, withWords := translationPrompt(style, len(d.Words) > 0)
	vars := prompt.Vars{
		Level:  string(level),
		Style:  string(style),
		Topic:  topic,
		Letter: d.Letter,
	}
	if withWords {
		vars.Words = d.Words
	}

	p, err := c.render(name, vars)
	if err != nil {
		return core.Reply{}, err
	}
	c.recentHint(ctx, core.KindTranslation, &p)

	text, err := c.complete(ctx, p.Messages(), p.Params, "translation", lookupFailure)
	if err != nil {
		return core.Reply{}, err
	}
	session.Reference = text
	c.remember(ctx, core.KindTranslation, text)

	var b strings.Builder
	fmt.Fprintf(&b, translationStart, level, style, topic)
	if withWords {
		b.WriteString(c.glossary(ctx, d.Words))
	}
	b.WriteString("**" + text + "**")

	return core.Reply{Text: b.String()}, nil
}

// translationPrompt picks the template for a style. Styles built around
// practice words fall back when no words could be drawn.
func translationPrompt(style state.Style, haveWords bool) (string, bool) {
	switch style {
	case state.StyleAlice, state.StyleNabokov:
		if haveWords {
			return "translation." + string(style), true
		}
		return "translation.letter." + string(style), false
	case state.StyleFantasy, state.StyleTravel:
		if haveWords {
			return "translation." + string(style), true
		}
		return "translation." + string(state.StyleLearning), false
	default:
		return "translation." + string(state.StyleLearning), false
	}
}

// glossary lists the practice words with their meaning. It is decoration:
// on failure the words are listed without translation.
func (c *Controller) glossary(ctx context.Context, words []string) string {
	p, err := c.render("translation.glossary", prompt.Vars{Words: words})
	if err == nil {
		var text string
		text, err = c.complete(ctx, p.Messages(), p.Params, "glossary", "")
		if err == nil {
			return fmt.Sprintf(translationGlossary, text)
		}
	}
	log.FromCtx(ctx).Warn().Err(err).Msg("failed to build glossary")
	return fmt.Sprintf(translationGlossary, strings.Join(words, ", "))
}

func (c *Controller) checkTranslation(ctx context.Context, st *state.State, s *state.Translation, text string) (core.Reply, error) {
	// one evaluated answer per text, whatever the outcome
	defer st.Clear()

	if s.Reference == "" {
		return core.Reply{}, &LostContextError{Mode: state.ModeTranslation, Notice: translationLost}
	}

	p, err := c.render("translation.check", prompt.Vars{Original: s.Reference, Answer: text})
	if err != nil {
		return core.Reply{}, err
	}
	feedback, err := c.complete(ctx, p.Messages(), p.Params, "translation check", translationCheckFailed)
	if err != nil {
		return core.Reply{}, err
	}
	return core.Reply{Text: feedback}, nil
}
