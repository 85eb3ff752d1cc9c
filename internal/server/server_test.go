package server

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wire constants of the adapter's delimited output format.
const (
	fs = "\x1f"
	rs = "\x1e"
)

// scriptedRunner feeds canned osascript outputs to the adapter in call
// order.
type scriptedRunner struct {
	outputs []string
	calls   int
}

func (r *scriptedRunner) Run(ctx context.Context, script string) (string, error) {
	out := ""
	if r.calls < len(r.outputs) {
		out = r.outputs[r.calls]
	}
	r.calls++
	return out, nil
}

// connect spins up the server and a client over in-memory transports.
func connect(t *testing.T, opts Options) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	s := New(opts)
	if _, err := s.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func toolNames(t *testing.T, session *mcp.ClientSession) []string {
	t.Helper()
	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestRegistersAllTools(t *testing.T) {
	session := connect(t, Options{Runner: &scriptedRunner{}})
	assert.ElementsMatch(t,
		[]string{"list_notes", "search_notes", "read_note", "create_note", "edit_note"},
		toolNames(t, session))
}

func TestReadOnlyWithholdsWriteTools(t *testing.T) {
	session := connect(t, Options{ReadOnly: true, Runner: &scriptedRunner{}})
	names := toolNames(t, session)
	assert.ElementsMatch(t, []string{"list_notes", "search_notes", "read_note"}, names)
	assert.NotContains(t, names, "create_note")
	assert.NotContains(t, names, "edit_note")
}

func TestReadNoteOverTheWire(t *testing.T) {
	body := "milk, eggs"
	runner := &scriptedRunner{outputs: []string{
		"Grocery List" + fs + "Shopping" + fs + "2026-08-01 09:00:00" + fs + "2026-08-23 14:05:09" + fs + body,
	}}
	session := connect(t, Options{Runner: runner})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "read_note",
		Arguments: map[string]any{"title": "Grocery List", "folder": "Shopping"},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, body, tc.Text)
}

func TestNotFoundSurfacesAsToolError(t *testing.T) {
	runner := &scriptedRunner{outputs: []string{rs + "not_found"}}
	session := connect(t, Options{Runner: runner})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "read_note",
		Arguments: map[string]any{"title": "Nope"},
	})
	require.NoError(t, err, "domain failures are tool errors, not protocol errors")
	assert.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, tc.Text, "not_found")
	assert.Contains(t, tc.Text, "Nope")
}

func TestValidationSurfacesAsToolError(t *testing.T) {
	runner := &scriptedRunner{}
	session := connect(t, Options{Runner: runner})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_notes",
		Arguments: map[string]any{"query": ""},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Zero(t, runner.calls, "validation must happen before any script runs")
}
