package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestInterpreter(t *testing.T) *interpreter {
	t.Helper()
	var logs strings.Builder
	return &interpreter{cli: New(&logs, LogInfo), ctx: context.Background()}
}

func TestInterpreterExec(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		contains []string
		quit     bool
	}{
		{"blank", "   ", nil, false},
		{"help", "help", []string{"gen *repeater count*", "wrrc *repeater count* *address nr.*"}, false},
		{"gen missing args", "gen", []string{notEnoughArgs}, false},
		{"wrrc missing args", "wrrc 3", []string{notEnoughArgs}, false},
		{"gen", "gen 2", []string{"Generate priority map for 2 repeaters ...", "001 | 1 | 4 |", "At delay 5 with 2 repeaters are 4 combinations possible"}, false},
		{"gen invalid", "gen 0", []string{"repeater count must be positive"}, false},
		{"gen not a number", "gen x", []string{"repeater count must be an integer"}, false},
		{"wrrc", "wrrc 2 2", []string{"Address-Code: | 2 | 3 |"}, false},
		{"wrrc out of range", "wrrc 2 9", []string{"Address 9 does not exist with only 2 repeaters!", "are 4 combinations possible"}, false},
		{"unknown", "bogus", []string{"Unknown command \"bogus\""}, false},
		{"exit", "exit", nil, true},
	}

	in := newTestInterpreter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, quit := in.exec(tt.line)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("exec(%q) output missing %q:\n%s", tt.line, want, out)
				}
			}
			if tt.contains == nil && out != "" {
				t.Errorf("exec(%q) = %q, want no output", tt.line, out)
			}
		})
	}
}

func TestShellScript(t *testing.T) {
	out, _, err := execute(t, "help\ngen 1\nwrrc 1 2\nexit\ngen 3\n", "shell")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "001 | 2 |") {
		t.Errorf("output missing gen 1 listing:\n%s", out)
	}
	if !strings.Contains(out, "Address 2 does not exist with only 1 repeaters!") {
		t.Errorf("output missing out-of-range message:\n%s", out)
	}
	if strings.Contains(out, "Generate priority map for 3") {
		t.Error("commands after exit should not run")
	}
}

func TestShellScriptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := executeContext(t, ctx, "gen 2\n", "shell")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if strings.Contains(out, "Generate priority map") {
		t.Errorf("cancelled script ran commands:\n%s", out)
	}
}

func TestShellModelTyping(t *testing.T) {
	var model tea.Model = newShellModel(newTestInterpreter(t))

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gen")})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	m := model.(shellModel)
	if m.input != "gen 1" {
		t.Fatalf("input = %q, want %q", m.input, "gen 1")
	}
	if !strings.Contains(m.View(), "gen 1") {
		t.Errorf("View() = %q", m.View())
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(shellModel)
	if m.input != "" {
		t.Errorf("input not cleared after enter: %q", m.input)
	}
	if cmd == nil {
		t.Error("enter should print the command output")
	}
	if m.quitting {
		t.Error("gen should not quit the shell")
	}
}

func TestShellModelQuit(t *testing.T) {
	model := newShellModel(newTestInterpreter(t))
	model.input = "exit"

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !updated.(shellModel).quitting {
		t.Error("exit should quit the shell")
	}
	if cmd == nil {
		t.Error("exit should return a command")
	}
	if updated.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	updated, _ = newShellModel(newTestInterpreter(t)).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(shellModel).quitting {
		t.Error("ctrl+c should quit the shell")
	}
}
