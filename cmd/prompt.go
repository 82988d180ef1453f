package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// terminal asks questions on stderr and reads the answers from in.
// It implements inventory.Confirmer and inventory.Asker.
type terminal struct {
	in  *bufio.Reader
	out io.Writer
	yes bool // accept every confirmation without asking
}

func newTerminal() *terminal {
	return &terminal{in: bufio.NewReader(stdin), out: os.Stderr, yes: *assumeYes}
}

func (t *terminal) readLine() (string, bool) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// Confirm asks a yes/no question, anything but y or yes declines.
func (t *terminal) Confirm(_ context.Context, message string) bool {
	if t.yes {
		return true
	}
	fmt.Fprintf(t.out, "%s [y/N]: ", message)
	answer, ok := t.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Ask prompts for a value. An empty answer keeps current, end of input cancels.
func (t *terminal) Ask(_ context.Context, question, current string) (string, bool) {
	if t.yes {
		return current, true
	}
	fmt.Fprintf(t.out, "%s [%s]: ", question, current)
	answer, ok := t.readLine()
	if !ok {
		return "", false
	}
	if answer == "" {
		return current, true
	}
	return answer, true
}
