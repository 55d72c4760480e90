package terminal

import (
	"fmt"
	"os"

	"appctl/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads from the controlling terminal. Prompts go to stderr so that
// command output on stdout stays clean.
type TerminalInput struct{}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

// ReadPassword prompts for a password and returns the input without echoing it
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
