package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/providers/words"
	"github.com/sandevgo/taalbot/internal/service/prompt"
	"github.com/sandevgo/taalbot/internal/service/state"
)

var errBackend = errors.New("backend unavailable")

type scripted struct {
	text string
	err  error
}

type modelCall struct {
	msgs   []core.Message
	params core.Params
}

func (c modelCall) last() string {
	return c.msgs[len(c.msgs)-1].Content
}

// fakeModel answers calls in order from a script.
type fakeModel struct {
	script []scripted
	calls  []modelCall
}

func (f *fakeModel) reply(texts ...string) *fakeModel {
	for _, t := range texts {
		f.script = append(f.script, scripted{text: t})
	}
	return f
}

func (f *fakeModel) fail(err error) *fakeModel {
	f.script = append(f.script, scripted{err: err})
	return f
}

func (f *fakeModel) Complete(_ context.Context, msgs []core.Message, params core.Params) (string, error) {
	f.calls = append(f.calls, modelCall{msgs: msgs, params: params})
	if len(f.script) == 0 {
		return "", errors.New("unexpected model call")
	}
	next := f.script[0]
	f.script = f.script[1:]
	return next.text, next.err
}

type fakeSpeech struct {
	err    error
	texts  []string
	voices []string
}

func (f *fakeSpeech) Synthesize(_ context.Context, text, voice string) (*core.Audio, error) {
	f.texts = append(f.texts, text)
	f.voices = append(f.voices, voice)
	if f.err != nil {
		return nil, f.err
	}
	return &core.Audio{Data: []byte("mp3"), FileName: voice + ".mp3", MIME: "audio/mpeg"}, nil
}

type memRecency struct {
	texts map[string][]string
	err   error
}

func (m *memRecency) Record(_ context.Context, kind, text string) error {
	if m.err != nil {
		return m.err
	}
	m.texts[kind] = append(m.texts[kind], text)
	return nil
}

func (m *memRecency) Recent(_ context.Context, kind string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]string(nil), m.texts[kind]...), nil
}

// fixedRand always picks the same position: first when high is false, last otherwise.
type fixedRand struct {
	high bool
}

func (r fixedRand) IntN(n int) int {
	if r.high {
		return n - 1
	}
	return 0
}

type harness struct {
	ctrl    *Controller
	model   *fakeModel
	speech  *fakeSpeech
	recency *memRecency
	state   *state.State
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	return newHarnessWithWords(t, words.Fallback(), opts...)
}

func newHarnessWithWords(t *testing.T, list *words.List, opts ...Option) *harness {
	t.Helper()
	book, err := prompt.Default()
	require.NoError(t, err)

	h := &harness{
		model:   &fakeModel{},
		speech:  &fakeSpeech{},
		recency: &memRecency{texts: make(map[string][]string)},
		state:   &state.State{UserID: 42, Session: state.Idle{}},
	}
	base := []Option{
		WithRand(fixedRand{}),
		WithClock(func() time.Time { return time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local) }),
	}
	h.ctrl = New(h.model, h.speech, h.recency, book, list, append(base, opts...)...)
	return h
}

func (h *harness) command(t *testing.T, input string) (core.Reply, error) {
	t.Helper()
	fields := strings.Fields(strings.TrimPrefix(input, "/"))
	return h.ctrl.HandleCommand(context.Background(), h.state, fields[0], fields[1:])
}

func (h *harness) text(t *testing.T, text string) (core.Reply, error) {
	t.Helper()
	return h.ctrl.HandleText(context.Background(), h.state, text)
}
