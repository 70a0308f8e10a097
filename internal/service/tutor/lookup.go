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
	defaultTerm         = "nietbestaan"
	defaultQuery        = "Waarom bestaat er überhaupt iets, en niet niets?"
	defaultReadingLevel = state.LevelB1
	readingToday        = "today"
)

func (c *Controller) lookupWord(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	term := a.rest(defaultTerm)
	st.Reset(&state.Word{Term: term})

	p, err := c.render("word", prompt.Vars{Term: term})
	if err != nil {
		return core.Reply{}, err
	}
	text, err := c.complete(ctx, p.Messages(), p.Params, "word", lookupFailure)
	if err != nil {
		return core.Reply{}, err
	}
	return core.Reply{Text: text}, nil
}

func (c *Controller) explain(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	query := a.rest(defaultQuery)
	st.Reset(&state.Explain{Query: query})

	p, err := c.render("explain", prompt.Vars{Query: query})
	if err != nil {
		return core.Reply{}, err
	}
	text, err := c.complete(ctx, p.Messages(), p.Params, "explain", lookupFailure)
	if err != nil {
		return core.Reply{}, err
	}
	return core.Reply{Text: text}, nil
}

// startReading writes a short text on a topic. The topic "today" picks a
// random year: past years get a historical fact for today's date, later ones
// an imagined future event. Audio is added when speech is available.
func (c *Controller) startReading(ctx context.Context, st *state.State, a *args) (core.Reply, error) {
	level, ok := a.level()
	if !ok {
		level = defaultReadingLevel
	}
	topic := a.rest(readingToday)

	session := &state.Reading{Level: level, Topic: topic}
	st.Reset(session)

	d := c.draw()
	vars := prompt.Vars{Level: string(level), Topic: topic}
	name := "reading.topic"
	if strings.EqualFold(topic, readingToday) {
		today := c.now()
		vars.Date = readingDate(today, d.Year)
		name = "reading.history"
		if d.Year > today.Year() {
			name = "reading.future"
		}
	}

	p, err := c.render(name, vars)
	if err != nil {
		return core.Reply{}, err
	}
	text, err := c.complete(ctx, p.Messages(), p.Params, "reading", lookupFailure)
	if err != nil {
		return core.Reply{}, err
	}
	session.Text = text

	reply := core.Reply{Text: fmt.Sprintf(readingIntro, level, topic, text)}
	audio, err := c.synthesize(ctx, text, d.Voice)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("reading sent without audio")
		return reply, nil
	}
	reply.Audio = audio
	return reply, nil
}
