package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/taalbot/internal/core"
)

type stubCommand struct{ name, desc string }

func (c stubCommand) Name() string        { return c.name }
func (c stubCommand) Description() string { return c.desc }
func (c stubCommand) Execute(context.Context, int64, []string) (core.Reply, error) {
	return core.Reply{}, nil
}

type stubRouter struct {
	reply  core.Reply
	userID int64
	input  string
}

func (r *stubRouter) Handle(_ context.Context, userID int64, input string) core.Reply {
	r.userID, r.input = userID, input
	return r.reply
}

func (r *stubRouter) ListCommands() []core.Command {
	return []core.Command{stubCommand{"dictate", "Dictation"}, stubCommand{"word", "Explain a word"}}
}

type stubRecency struct {
	texts []string
	err   error
}

func (s stubRecency) Recent(context.Context, string) ([]string, error) {
	return s.texts, s.err
}

func call(t *testing.T, fn func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := fn(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestTutorTool(t *testing.T) {
	router := &stubRouter{reply: core.Reply{Text: "Vertaal: ...", Audio: &core.Audio{Data: []byte{1}}}}
	h := &handler{router: router}

	text, isErr := call(t, h.tutor, map[string]any{"input": "  /dictate A2 "})
	assert.False(t, isErr)
	assert.Equal(t, UserID, router.userID)
	assert.Equal(t, "/dictate A2", router.input)
	assert.Contains(t, text, "Vertaal: ...")
	assert.Contains(t, text, "audio clip")

	_, isErr = call(t, h.tutor, map[string]any{})
	assert.True(t, isErr)
}

func TestListCommandsTool(t *testing.T) {
	h := &handler{router: &stubRouter{}}

	text, isErr := call(t, h.listCommands, nil)
	assert.False(t, isErr)
	assert.Equal(t, "/dictate - Dictation\n/word - Explain a word\n", text)
}

func TestRecentTextsTool(t *testing.T) {
	h := &handler{recency: stubRecency{texts: []string{"Ik fiets.", "Het regent."}}}

	text, isErr := call(t, h.recentTexts, map[string]any{"kind": "dictate"})
	assert.False(t, isErr)
	assert.Equal(t, "Ik fiets.\nHet regent.", text)

	_, isErr = call(t, h.recentTexts, map[string]any{"kind": "poems"})
	assert.True(t, isErr)

	h = &handler{recency: stubRecency{err: errors.New("locked")}}
	_, isErr = call(t, h.recentTexts, map[string]any{"kind": "translation"})
	assert.True(t, isErr)

	h = &handler{recency: stubRecency{}}
	text, _ = call(t, h.recentTexts, map[string]any{"kind": "translation"})
	assert.Equal(t, "Nothing recorded recently.", text)
}
