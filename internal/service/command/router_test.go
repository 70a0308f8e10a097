package command

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/state"
	"github.com/sandevgo/taalbot/internal/service/tutor"
)

type tutorCall struct {
	userID int64
	name   string
	argv   []string
	text   string
}

type fakeTutor struct {
	calls []tutorCall
	err   error
}

func (f *fakeTutor) HandleCommand(_ context.Context, st *state.State, name string, argv []string) (core.Reply, error) {
	f.calls = append(f.calls, tutorCall{userID: st.UserID, name: name, argv: argv})
	if f.err != nil {
		return core.Reply{}, f.err
	}
	st.Reset(&state.Word{Term: name})
	return core.Reply{Text: "ok " + name}, nil
}

func (f *fakeTutor) HandleText(_ context.Context, st *state.State, text string) (core.Reply, error) {
	f.calls = append(f.calls, tutorCall{userID: st.UserID, text: text})
	if f.err != nil {
		return core.Reply{}, f.err
	}
	return core.Reply{Text: "echo " + text}, nil
}

func newTestRouter() (*Router, *fakeTutor, *state.Store) {
	t := &fakeTutor{}
	sessions := state.NewStore(time.Hour)
	return NewRouter(sessions, t), t, sessions
}

func TestRouter_TutorCommands(t *testing.T) {
	r, ft, sessions := newTestRouter()

	reply := r.Handle(context.Background(), 7, "/translation B1 N reizen")
	assert.Equal(t, "ok translation", reply.Text)
	require.Len(t, ft.calls, 1)
	assert.Equal(t, int64(7), ft.calls[0].userID)
	assert.Equal(t, []string{"B1", "N", "reizen"}, ft.calls[0].argv)
	assert.Equal(t, state.ModeWord, sessions.Peek(7))
}

func TestRouter_BotSuffixAndCase(t *testing.T) {
	r, ft, _ := newTestRouter()

	reply := r.Handle(context.Background(), 1, "/Dictate@taal_bot n")
	assert.Equal(t, "ok dictate", reply.Text)
	assert.Equal(t, []string{"n"}, ft.calls[0].argv)
}

func TestRouter_TextGoesToTutor(t *testing.T) {
	r, ft, _ := newTestRouter()

	reply := r.Handle(context.Background(), 3, "  Ik ben moe  ")
	assert.Equal(t, "echo Ik ben moe", reply.Text)
	assert.Equal(t, int64(3), ft.calls[0].userID)
}

func TestRouter_Errors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		input string
		want  string
	}{
		{"validation", &tutor.ValidationError{Usage: "usage here"}, "/roleplay", "usage here"},
		{"gateway", &tutor.GatewayError{Op: "x", Notice: "try again", Err: assert.AnError}, "/word", "try again"},
		{"lost context", &tutor.LostContextError{Mode: state.ModeDictate, Notice: "start over"}, "hallo", "start over"},
		{"unexpected", assert.AnError, "hallo", "An error occurred. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ft, _ := newTestRouter()
			ft.err = tt.err

			reply := r.Handle(context.Background(), 1, tt.input)
			assert.Equal(t, tt.want, reply.Text)
		})
	}
}

func TestRouter_UnknownCommand(t *testing.T) {
	r, ft, _ := newTestRouter()

	reply := r.Handle(context.Background(), 1, "/dance")
	assert.Equal(t, "Unknown command. Use /start to see what I can do.", reply.Text)
	assert.Empty(t, ft.calls)
}

func TestRouter_StartListsCommands(t *testing.T) {
	r, ft, sessions := newTestRouter()

	reply := r.Handle(context.Background(), 1, "/start")
	assert.Contains(t, reply.Text, "Hoi!")
	for _, name := range tutorCommands {
		assert.Contains(t, reply.Text, "/"+name+" — "+helpTopics[name].description)
	}
	assert.NotContains(t, reply.Text, "/start —")
	assert.Empty(t, ft.calls)
	assert.Equal(t, state.ModeIdle, sessions.Peek(1))
}

func TestRouter_Info(t *testing.T) {
	r, _, _ := newTestRouter()

	reply := r.Handle(context.Background(), 1, "/info")
	assert.Contains(t, reply.Text, "/info [command]")

	reply = r.Handle(context.Background(), 1, "/info /Translation")
	assert.Contains(t, reply.Text, "Nabokov")
	assert.Contains(t, reply.Text, "/translation B2 L food")

	reply = r.Handle(context.Background(), 1, "/info nothing")
	assert.Equal(t, "Unknown command: nothing", reply.Text)
}

func TestRouter_ListCommandsSorted(t *testing.T) {
	r, _, _ := newTestRouter()

	var names []string
	for _, cmd := range r.ListCommands() {
		names = append(names, cmd.Name())
		assert.NotEmpty(t, cmd.Description())
	}
	assert.Len(t, names, len(tutorCommands)+2)
	assert.True(t, strings.Compare(names[0], names[len(names)-1]) < 0)
	assert.Contains(t, names, "start")
	assert.Contains(t, names, "info")
}
