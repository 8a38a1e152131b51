package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wrrc/pkg/buildinfo"
	apperr "github.com/matzehuels/wrrc/pkg/errors"
	"github.com/matzehuels/wrrc/pkg/report"
)

const notEnoughArgs = "Not enough arguments, type help to see correct arguments"

const shellHelp = `WRRC -> Wireless Redstone Repeater Chain
WRRC-Address -> A repeater configuration specified by the number of repeaters and the position in the priority list.
Commands:
Type 'gen *repeater count*' to generate a priority list (with address numbers)
Type 'wrrc *repeater count* *address nr.*' to get the repeater configuration of the given address-nr.
Type 'exit' to close the program`

var stylePrompt = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// shellCommand creates the interactive shell command.
func (c *CLI) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive prompt (gen, wrrc, help, exit)",
		Long: `Start an interactive prompt.

On a terminal the prompt is interactive. When input is piped, every line is
executed as a command and the output is printed without prompts, so scripts
like "printf 'gen 3\nexit\n' | wrrc shell" work.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interp := &interpreter{cli: c, ctx: cmd.Context()}
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()

			if isTerminal(in) && isTerminal(out) {
				p := tea.NewProgram(newShellModel(interp), tea.WithContext(cmd.Context()), tea.WithInput(in), tea.WithOutput(out))
				_, err := p.Run()
				return err
			}
			return runScript(interp, in, out)
		},
	}
}

// =============================================================================
// Interpreter
// =============================================================================

// interpreter executes shell command lines.
type interpreter struct {
	cli *CLI
	ctx context.Context
}

// exec runs one line and returns the text to print and whether the shell
// should exit. Errors are reported in the returned text; they never end the
// session.
func (in *interpreter) exec(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	var b strings.Builder
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return "", true
	case "help":
		b.WriteString(shellHelp)
	case "gen":
		if len(fields) < 2 {
			return notEnoughArgs, false
		}
		in.gen(&b, fields[1])
	case "wrrc", "addr":
		if len(fields) < 3 {
			return notEnoughArgs, false
		}
		in.addr(&b, fields[1], fields[2])
	default:
		printError(&b, "Unknown command %q, type help to see commands", fields[0])
	}
	return strings.TrimRight(b.String(), "\n"), false
}

func (in *interpreter) gen(w io.Writer, countArg string) {
	n, err := parseCount(countArg)
	if err != nil {
		printError(w, "%s", apperr.UserMessage(err))
		return
	}
	fmt.Fprintf(w, "Generate priority map for %d repeaters ...\n", n)

	res, err := in.cli.generateList(in.ctx, n, false)
	if err != nil {
		printError(w, "%s", apperr.UserMessage(err))
		return
	}
	if err := report.WriteTable(w, res); err != nil {
		printError(w, "%s", err)
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Summary(res))
}

func (in *interpreter) addr(w io.Writer, countArg, addrArg string) {
	n, err := parseCount(countArg)
	if err != nil {
		printError(w, "%s", apperr.UserMessage(err))
		return
	}
	addr, err := parseAddress(addrArg)
	if err != nil {
		printError(w, "%s", apperr.UserMessage(err))
		return
	}

	res, err := in.cli.generateList(in.ctx, n, false)
	if err != nil {
		printError(w, "%s", apperr.UserMessage(err))
		return
	}
	cfg, err := res.Lookup(addr)
	if err != nil {
		fmt.Fprintf(w, "Address %d does not exist with only %d repeaters!\n", addr, n)
		fmt.Fprintln(w, report.Summary(res))
		return
	}
	fmt.Fprintln(w, report.Address(cfg))
}

// runScript executes r line by line until EOF, exit or cancellation of the
// interpreter's context.
func runScript(interp *interpreter, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := interp.ctx.Err(); err != nil {
			return err
		}
		out, quit := interp.exec(scanner.Text())
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// =============================================================================
// shellModel - Interactive prompt
// =============================================================================

// shellModel is the bubbletea model for the interactive prompt. Command
// output is printed above the prompt so it stays in the terminal scrollback.
type shellModel struct {
	interp   *interpreter
	input    string
	quitting bool
}

func newShellModel(interp *interpreter) shellModel {
	return shellModel{interp: interp}
}

func banner() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Wireless-Redstone Repeater-Chain-Generator"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(buildinfo.Get().String()))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("Type help to see commands and explanation"))
	return b.String()
}

func (m shellModel) Init() tea.Cmd {
	return tea.Println(banner())
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		line := m.input
		m.input = ""
		out, quit := m.interp.exec(line)

		cmds := []tea.Cmd{tea.Println(stylePrompt.Render("> ") + line)}
		if out != "" {
			cmds = append(cmds, tea.Println(out))
		}
		if quit {
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Sequence(cmds...)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}
	return stylePrompt.Render("> ") + m.input + StyleDim.Render("█")
}
