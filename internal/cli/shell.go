package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordgraph/pkg/buildinfo"
	"github.com/matzehuels/wordgraph/pkg/errors"
	"github.com/matzehuels/wordgraph/pkg/wordgraph"
)

// shellCommand creates the shell command.
func (c *CLI) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu over a single graph",
		Long: `Build the graph once and query it from a menu.

If no input file is configured, the shell asks for one until it can be read.
On a terminal the menu is navigated with the arrow keys; when input or
output is redirected the shell reads one answer per line instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := bufio.NewScanner(in)
	lines.Buffer(make([]byte, 0, 64*1024), 1<<20)

	g, err := c.promptGraph(ctx, lines, out)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	store, err := c.newStore(false)
	if err != nil {
		return err
	}
	defer store.Close()

	s := c.newSession(g, store)
	if interactive() {
		_, err := tea.NewProgram(newShellModel(ctx, s), tea.WithContext(ctx)).Run()
		return err
	}
	return lineMenu(ctx, s, lines, out)
}

// promptGraph builds the graph from the configured input, asking for a path
// until one can be read. It returns io.EOF when input runs out.
func (c *CLI) promptGraph(ctx context.Context, lines *bufio.Scanner, out io.Writer) (*wordgraph.Graph, error) {
	path := c.cfg.Input
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if path == "" {
			fmt.Fprint(out, "Enter the path of the text file: ")
			if !lines.Scan() {
				return nil, io.EOF
			}
			path = strings.TrimSpace(lines.Text())
		}

		g, err := buildGraph(ctx, path)
		if err == nil {
			fmt.Fprintln(out, "Text processed and graph generated successfully!")
			return g, nil
		}
		fmt.Fprintln(out, errors.UserMessage(err))
		path = ""
	}
}

// lineMenu runs the menu over plain lines of input.
func lineMenu(ctx context.Context, s *session, lines *bufio.Scanner, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, "\nChoose an option:")
		for i, item := range menuItems {
			fmt.Fprintf(out, "%d. %s\n", i+1, item.label)
		}
		if !lines.Scan() {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(lines.Text()))
		if err != nil || choice < 1 || choice > len(menuItems) {
			fmt.Fprintln(out, "Invalid choice. Try again.")
			continue
		}
		if choice == exitChoice {
			return nil
		}

		var answers []string
		for _, prompt := range menuItems[choice-1].prompts {
			fmt.Fprint(out, prompt)
			if !lines.Scan() {
				return nil
			}
			answers = append(answers, lines.Text())
		}
		fmt.Fprintln(out, s.runChoice(ctx, choice, answers))
	}
}

// =============================================================================
// ShellModel - Interactive menu
// =============================================================================

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

type shellState int

const (
	stateMenu shellState = iota
	statePrompt
	stateBusy
	stateResult
)

// choiceDoneMsg carries the output of a finished menu option.
type choiceDoneMsg struct {
	output string
}

// ShellModel is the bubbletea model for the interactive menu.
type ShellModel struct {
	ctx     context.Context
	session *session

	state   shellState
	cursor  int
	choice  int
	answers []string
	input   []rune
	output  string
}

func newShellModel(ctx context.Context, s *session) ShellModel {
	return ShellModel{ctx: ctx, session: s}
}

func (m ShellModel) Init() tea.Cmd {
	return nil
}

func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case choiceDoneMsg:
		m.state = stateResult
		m.output = msg.output
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case statePrompt:
			return m.updatePrompt(msg)
		case stateResult:
			m.state = stateMenu
			m.output = ""
		}
	}
	return m, nil
}

func (m ShellModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		return m.selectChoice(m.cursor + 1)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(menuItems) {
			m.cursor = n - 1
			return m.selectChoice(n)
		}
	}
	return m, nil
}

func (m ShellModel) selectChoice(choice int) (tea.Model, tea.Cmd) {
	if choice == exitChoice {
		return m, tea.Quit
	}
	m.choice = choice
	m.answers = nil
	m.input = nil
	if len(menuItems[choice-1].prompts) > 0 {
		m.state = statePrompt
		return m, nil
	}
	return m.run()
}

func (m ShellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		return m, nil
	case tea.KeyEnter:
		m.answers = append(m.answers, string(m.input))
		m.input = nil
		if len(m.answers) == len(menuItems[m.choice-1].prompts) {
			return m.run()
		}
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m, nil
}

// run executes the selected option off the update loop.
func (m ShellModel) run() (tea.Model, tea.Cmd) {
	m.state = stateBusy
	ctx, s, choice, answers := m.ctx, m.session, m.choice, m.answers
	return m, func() tea.Msg {
		return choiceDoneMsg{output: s.runChoice(ctx, choice, answers)}
	}
}

func (m ShellModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName + " " + buildinfo.Short()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d words · %d edges", m.session.g.NodeCount(), m.session.g.EdgeCount())))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%d. %s", i+1, item.label)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case stateMenu:
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  1-7 jump  q quit"))
	case statePrompt:
		prompts := menuItems[m.choice-1].prompts
		for i, answer := range m.answers {
			b.WriteString(StyleDim.Render(prompts[i]) + answer + "\n")
		}
		b.WriteString(prompts[len(m.answers)] + string(m.input) + StyleHighlight.Render("█"))
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render("⏎ confirm  esc back"))
	case stateBusy:
		b.WriteString(StyleDim.Render("Working..."))
	case stateResult:
		b.WriteString(StyleValue.Render(m.output))
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render("press any key to continue"))
	}
	b.WriteString("\n")
	return b.String()
}
