// Package console adapts the survey to a text terminal: prompts and
// corrective messages on one stream, whitespace-separated tokens on another.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/couchcryptid/temperature-survey/internal/config"
	"github.com/couchcryptid/temperature-survey/internal/domain"
	"golang.org/x/term"
)

// Prompter asks for one city at a time and returns the raw token typed.
// It implements survey.Prompter.
type Prompter struct {
	scanner     *bufio.Scanner
	out         io.Writer
	showPrompts bool
}

// NewPrompter reads tokens from in and writes prompts and corrections to out.
// Tokens are split on any whitespace, so several values may share a line.
func NewPrompter(in io.Reader, out io.Writer, showPrompts bool) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, out: out, showPrompts: showPrompts}
}

// PromptsEnabled resolves a PROMPT_MODE against the input stream. In auto mode
// prompts are shown only when in is a terminal.
func PromptsEnabled(mode string, in io.Reader) bool {
	switch mode {
	case config.PromptNever:
		return false
	case config.PromptAuto:
		f, ok := in.(interface{ Fd() uintptr })
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}

// Prompt writes the request for city and blocks until the next token arrives.
// It returns domain.ErrInputExhausted when the input ends.
func (p *Prompter) Prompt(ctx context.Context, city int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.showPrompts {
		if _, err := fmt.Fprintf(p.out, "Enter the maximum summer temperature for city %d: ", city); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", domain.ErrInputExhausted
	}
	return p.scanner.Text(), nil
}

// Correct writes a corrective message on its own line.
func (p *Prompter) Correct(_ context.Context, msg string) error {
	if _, err := fmt.Fprintln(p.out, msg); err != nil {
		return fmt.Errorf("write correction: %w", err)
	}
	return nil
}
