// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// PromptModel is the Bubble Tea model for a single masked secret input.
// Enter submits a non-empty value; esc and ctrl+c abort.
type PromptModel struct {
	label  string
	input  textinput.Model
	errMsg string

	submitted bool
	aborted   bool
}

// NewPromptModel creates a focused [PromptModel] whose input echoes '*'.
func NewPromptModel(label string) PromptModel {
	in := textinput.New()
	in.Placeholder = "password"
	in.CharLimit = 1024
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Focus()

	return PromptModel{label: label, input: in}
}

// Init implements [tea.Model].
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Value() == "" {
				m.errMsg = "a value is required"
				return m, nil
			}
			m.errMsg = ""
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m PromptModel) View() string {
	if m.submitted || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the entered secret.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether the user confirmed the input.
func (m PromptModel) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user cancelled.
func (m PromptModel) Aborted() bool {
	return m.aborted
}

type fdReader interface {
	Fd() uintptr
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(fdReader)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PromptSecret asks for a secret. On a terminal it runs a masked Bubble Tea
// prompt; otherwise it reads one line from in, so the CLI can be scripted.
func PromptSecret(in io.Reader, out io.Writer, label string) (string, error) {
	if !IsTerminal(in) {
		return readLine(in)
	}

	final, err := tea.NewProgram(
		NewPromptModel(label),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	result, ok := final.(PromptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if !result.Submitted() {
		return "", ErrUserQuit
	}
	return result.Value(), nil
}

// readLine reads up to the first newline one byte at a time, so several
// prompts can share the same unbuffered input. Input that ends without a
// newline is accepted; no input at all is ErrNoInput.
func readLine(in io.Reader) (string, error) {
	var (
		line []byte
		buf  [1]byte
	)
	for {
		n, err := in.Read(buf[:])
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
	}

	s := strings.TrimRight(string(line), "\r")
	if s == "" {
		return "", ErrNoInput
	}
	return s, nil
}
