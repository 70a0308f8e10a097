package tutor

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/providers/words"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/state"
	"github.com/sandevgo/taalbot/pkg/conv"
	"github.com/sandevgo/taalbot/pkg/log"
)

const DefaultHistoryCap = 10

// RecencyStore remembers generated texts so prompts can ask for new ones.
type RecencyStore interface {
	Record(ctx context.Context, kind, text string) error
	Recent(ctx context.Context, kind string) ([]string, error)
}

// Controller maps a user's session and an incoming command or message to a
// reply, calling the model as needed. It does no locking: callers hand it a
// state that nobody else touches for the duration of the call.
type Controller struct {
	ai      core.AIProvider
	speech  core.SpeechProvider
	recency RecencyStore
	book    *prompt.Book
	words   *words.List

	hints      *prompt.Limiter
	historyCap int
	rand       Rand
	now        func() time.Time
}

type Option func(*Controller)

func WithHistoryCap(n int) Option {
	return func(c *Controller) {
		if n >= 2 {
			c.historyCap = n
		}
	}
}

func WithRand(r Rand) Option {
	return func(c *Controller) { c.rand = r }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithHintLimiter caps the recency hint appended to generation prompts.
func WithHintLimiter(l *prompt.Limiter) Option {
	return func(c *Controller) { c.hints = l }
}

func New(
	ai core.AIProvider,
	speech core.SpeechProvider,
	recency RecencyStore,
	book *prompt.Book,
	list *words.List,
	opts ...Option,
) *Controller {
	c := &Controller{
		ai:         ai,
		speech:     speech,
		recency:    recency,
		book:       book,
		words:      list,
		historyCap: DefaultHistoryCap,
		rand:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x7461616c)),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleCommand runs a slash command for the user owning st.
func (c *Controller) HandleCommand(ctx context.Context, st *state.State, name string, argv []string) (core.Reply, error) {
	ctx = log.With(ctx, func(l zerolog.Context) zerolog.Context {
		return l.Str("command", name)
	})
	a := newArgs(argv)

	switch name {
	case "chat":
		return c.startChat(st)
	case "roleplay":
		return c.startRoleplay(ctx, st, a)
	case "translation":
		return c.startTranslation(ctx, st, a)
	case "practice":
		return c.startPractice(ctx, st, a)
	case "more":
		return c.morePractice(ctx, st)
	case "exam":
		return c.startExam(ctx, st, a)
	case "dictate":
		return c.startDictate(ctx, st, a)
	case "word":
		return c.lookupWord(ctx, st, a)
	case "explain":
		return c.explain(ctx, st, a)
	case "reading":
		return c.startReading(ctx, st, a)
	default:
		return core.Reply{}, ErrUnknownCommand
	}
}

// HandleText interprets a plain message according to the active mode.
func (c *Controller) HandleText(ctx context.Context, st *state.State, text string) (core.Reply, error) {
	text = strings.TrimSpace(text)
	ctx = log.With(ctx, func(l zerolog.Context) zerolog.Context {
		return l.Str("mode", string(st.Mode()))
	})

	switch s := st.Session.(type) {
	case *state.Chat:
		return c.chatTurn(ctx, &s.History, text)
	case *state.Roleplay:
		return c.chatTurn(ctx, &s.History, text)
	case *state.Translation:
		return c.checkTranslation(ctx, st, s, text)
	case *state.Practice:
		return c.checkPractice(ctx, st, s, text)
	case *state.Exam:
		return c.checkExam(ctx, st, s, text)
	case *state.Dictate:
		return c.checkDictate(ctx, st, s, text)
	default:
		return core.Reply{Text: IdleHint}, nil
	}
}

// complete calls the model and wraps a failure with the notice the user sees.
func (c *Controller) complete(ctx context.Context, msgs []core.Message, params core.Params, op, notice string) (string, error) {
	text, err := c.ai.Complete(ctx, msgs, params)
	if err != nil {
		return "", &GatewayError{Op: op, Notice: notice, Err: err}
	}
	return text, nil
}

func (c *Controller) render(name string, vars prompt.Vars) (prompt.Prompt, error) {
	p, err := c.book.Render(name, vars)
	if err != nil {
		return prompt.Prompt{}, &GatewayError{Op: "render " + name, Notice: genericFailure, Err: err}
	}
	return p, nil
}

// recentHint appends the recently generated texts of kind to p.User.
// A failing store only costs the hint.
func (c *Controller) recentHint(ctx context.Context, kind string, p *prompt.Prompt) {
	recent, err := c.recency.Recent(ctx, kind)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("kind", kind).Msg("failed to load recent texts")
		return
	}
	p.User = prompt.AvoidRepeats(p.User, c.hints.Fit(recent))
}

func (c *Controller) remember(ctx context.Context, kind, text string) {
	if err := c.recency.Record(ctx, kind, text); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("kind", kind).Msg("failed to record generated text")
	}
}

// synthesize voices Markdown text with the drawn voice.
func (c *Controller) synthesize(ctx context.Context, text, voice string) (*core.Audio, error) {
	plain, err := conv.MarkdownToPlainText([]byte(text))
	if err != nil || plain == "" {
		plain = text
	}
	audio, err := c.speech.Synthesize(ctx, plain, voice)
	if err != nil {
		return nil, err
	}
	return audio, nil
}
