// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal parts of the gopass front end: the masked
// password prompt and the renderers for entries, lists and agent status.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Prompter asks the user for secrets.
type Prompter struct {
	in  *os.File
	out io.Writer

	lines *bufio.Reader
}

// NewPrompter reads from in and draws on out.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Password asks for a secret. On a terminal a masked input is shown;
// otherwise one line is read from the input, so secrets can be piped in.
func (p *Prompter) Password(ctx context.Context, prompt string) (string, error) {
	if term.IsTerminal(int(p.in.Fd())) {
		return p.interactive(ctx, prompt)
	}
	return p.readLine()
}

func (p *Prompter) interactive(ctx context.Context, prompt string) (string, error) {
	program := tea.NewProgram(
		newPasswordModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("password prompt: %w", err)
	}

	result, ok := final.(passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}
	return result.Value(), nil
}

func (p *Prompter) readLine() (string, error) {
	if p.lines == nil {
		p.lines = bufio.NewReader(p.in)
	}

	line, err := p.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrEmptyInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}
