package conflict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TerminalConfirmer blocks on a reader for a single y/n answer.
// Anything other than "y" or "yes" (case-insensitive) is a no, which
// is also the default on read errors or EOF.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalConfirmer returns a confirmer bound to stdin/stderr.
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin, Out: os.Stderr}
}

// Confirm implements types.Confirmer
func (c *TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(c.Out, prompt)
	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// DeclineAll is the confirmer used when no interactive terminal is
// attached: every prompt is answered no.
type DeclineAll struct{}

// Confirm implements types.Confirmer
func (DeclineAll) Confirm(string) bool { return false }
