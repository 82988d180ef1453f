package cmd

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTerminal(input string, yes bool) *terminal {
	return &terminal{in: bufio.NewReader(strings.NewReader(input)), out: io.Discard, yes: yes}
}

func TestTerminalConfirm(t *testing.T) {
	testCases := []struct {
		input string
		yes   bool
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: " y \r\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
		{input: "maybe", want: false},
		{input: "", yes: true, want: true},
	}
	for _, tc := range testCases {
		got := newTestTerminal(tc.input, tc.yes).Confirm(context.Background(), "sure?")
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestTerminalAsk(t *testing.T) {
	ctx := context.Background()
	term := newTestTerminal("Gadget\n\nlast", false)

	got, ok := term.Ask(ctx, "name", "Widget")
	assert.True(t, ok)
	assert.Equal(t, "Gadget", got)

	got, ok = term.Ask(ctx, "name", "Widget")
	assert.True(t, ok)
	assert.Equal(t, "Widget", got)

	// a last line without newline is still an answer
	got, ok = term.Ask(ctx, "name", "Widget")
	assert.True(t, ok)
	assert.Equal(t, "last", got)

	_, ok = term.Ask(ctx, "name", "Widget")
	assert.False(t, ok)

	got, ok = newTestTerminal("", true).Ask(ctx, "name", "Widget")
	assert.True(t, ok)
	assert.Equal(t, "Widget", got)
}
