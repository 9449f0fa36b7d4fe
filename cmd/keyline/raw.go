package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"golang.org/x/term"

	"github.com/iw2rmb/keyline/console"
	"github.com/iw2rmb/keyline/editor"
	"github.com/iw2rmb/keyline/internal/config"
	"github.com/iw2rmb/keyline/internal/log"
)

var promptStyle = lipgloss.NewStyle().Bold(true)

// rawModel edits straight on the terminal. Bubble Tea only decodes keys;
// its renderer is off and View is empty.
type rawModel struct {
	lines   *lineEditor
	term    *console.Terminal
	session *editor.Session
	err     error
}

func newRawModel(cfg config.Config, fs afero.Fs, t *console.Terminal) *rawModel {
	return &rawModel{lines: newLineEditor(cfg, fs), term: t}
}

func (m *rawModel) startLine() {
	m.term.WritePrompt(promptStyle.Render(m.lines.cfg.Prompt))
	m.session = m.lines.session(m.term)
}

func (m *rawModel) Init() tea.Cmd {
	m.startLine()
	return nil
}

func (m *rawModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Type == tea.KeyCtrlC,
		key.Type == tea.KeyCtrlD && m.session.Text() == "":
		m.session.Do(editor.ActionEnd)
		m.term.Newline()
		cmd = tea.Quit
	case key.Type == tea.KeyEnter:
		line := m.session.Text()
		m.session.Do(editor.ActionEnd)
		m.term.Newline()
		log.Info(log.CatApp, "Line entered", "session", m.session.ID(), "runes", len([]rune(line)))
		m.lines.commit(line)
		m.startLine()
	default:
		for _, ks := range editor.Keystrokes(key) {
			m.session.Handle(ks)
		}
	}

	if err := m.term.Err(); err != nil {
		m.err = fmt.Errorf("writing to terminal: %w", err)
		return m, tea.Quit
	}
	return m, cmd
}

func (m *rawModel) View() string { return "" }

// newRawTerminal returns the cursor to column 0 before handing w to a
// Terminal, whose origin is always the start of a row.
func newRawTerminal(w io.Writer, opts console.TerminalOptions) *console.Terminal {
	t := console.NewTerminal(w, opts)
	t.CarriageReturn()
	return t
}

func runRaw(cfg config.Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("--raw needs an interactive terminal on stdin")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	opts := console.TerminalOptions{Fd: int(os.Stdout.Fd()), Width: cfg.Width}
	if cfg.Width > 0 {
		opts.Fd = -1
	}
	m := newRawModel(cfg, afero.NewOsFs(), newRawTerminal(os.Stdout, opts))

	p := tea.NewProgram(m, tea.WithoutRenderer(), tea.WithInput(os.Stdin), tea.WithOutput(io.Discard))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return m.err
}
