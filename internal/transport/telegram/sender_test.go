package telegram

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/taalbot/internal/core"
)

func TestSplitHTML(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitHTML("short", 10))

	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
	assert.Equal(t, []string{strings.Repeat("a", 8), strings.Repeat("b", 8)}, splitHTML(text, 10))

	long := strings.Repeat("x", 25)
	chunks := splitHTML(long, 10)
	assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, chunks)
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, shouldRetry(tele.FloodError{RetryAfter: 3}))
	assert.True(t, shouldRetry(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.False(t, shouldRetry(errors.New("bad request")))
}

func TestBotCommands(t *testing.T) {
	got := botCommands([]core.Command{fakeCommand{"chat", "Free conversation"}})
	assert.Equal(t, []tele.Command{{Text: "chat", Description: "Free conversation"}}, got)
}

type fakeCommand struct {
	name, desc string
}

func (f fakeCommand) Name() string        { return f.name }
func (f fakeCommand) Description() string { return f.desc }
func (f fakeCommand) Execute(_ context.Context, _ int64, _ []string) (core.Reply, error) {
	return core.Reply{}, nil
}
