package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/iw2rmb/keyline/console"
	"github.com/iw2rmb/keyline/editor"
	"github.com/iw2rmb/keyline/internal/config"
	"github.com/iw2rmb/keyline/internal/log"
)

const defaultTUIWidth = 80

var (
	cursorStyle     = lipgloss.NewStyle().Reverse(true)
	transcriptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tuiModel struct {
	lines *lineEditor

	width   int
	fixed   bool // width comes from config, ignore window resizes
	screen  *console.Screen
	session *editor.Session

	entered    []string
	transcript viewport.Model
	help       help.Model
	keys       editor.HelpMap
}

func newTUIModel(cfg config.Config, fs afero.Fs) tuiModel {
	width := cfg.Width
	if width <= 0 {
		width = defaultTUIWidth
	}
	m := tuiModel{
		lines:      newLineEditor(cfg, fs),
		width:      width,
		fixed:      cfg.Width > 0,
		transcript: viewport.New(width, 10),
		help:       help.New(),
	}
	m.startLine()
	m.keys = m.session.Help()
	return m
}

// newScreen returns an empty screen at the current width with the prompt
// drawn.
func (m *tuiModel) newScreen() *console.Screen {
	scr := console.NewScreen(m.width)
	scr.Write(m.lines.cfg.Prompt)
	return scr
}

// startLine starts an empty line on a fresh screen.
func (m *tuiModel) startLine() {
	m.screen = m.newScreen()
	m.session = m.lines.session(m.screen)
}

// relayout moves the current line onto a fresh screen at the new width.
func (m *tuiModel) relayout() {
	m.screen = m.newScreen()
	m.session.Relayout(m.screen)
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.transcript.Width = msg.Width
		m.transcript.Height = max(1, msg.Height-m.screen.Height()-2)
		if !m.fixed && msg.Width > 0 && msg.Width != m.width {
			m.width = msg.Width
			m.relayout()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case msg.Type == tea.KeyCtrlD && m.session.Text() == "":
			return m, tea.Quit
		case msg.Type == tea.KeyEnter:
			m.commit()
			return m, nil
		case msg.Type == tea.KeyF1:
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		for _, ks := range editor.Keystrokes(msg) {
			m.session.Handle(ks)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	return m, cmd
}

func (m *tuiModel) commit() {
	line := m.session.Text()
	log.Info(log.CatApp, "Line entered", "session", m.session.ID(), "runes", len([]rune(line)))

	m.entered = append(m.entered, m.lines.cfg.Prompt+line)
	m.transcript.SetContent(transcriptStyle.Render(strings.Join(m.entered, "\n")))
	m.transcript.GotoBottom()

	m.lines.commit(line)
	m.startLine()
}

func (m tuiModel) View() string {
	var sb strings.Builder
	if len(m.entered) > 0 {
		sb.WriteString(m.transcript.View())
		sb.WriteString("\n")
	}
	sb.WriteString(renderScreen(m.screen))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m tuiModel) status() string {
	s := fmt.Sprintf("col %d · history %d/%d", m.session.Cursor(), m.session.HistoryIndex(), len(m.lines.history))
	if m.session.Completing() {
		s += fmt.Sprintf(" · completion %d", m.session.CompletionIndex()+1)
	}
	return s
}

// renderScreen draws every row of scr with the cursor cell highlighted.
func renderScreen(scr *console.Screen) string {
	rows := make([]string, scr.Height())
	for top := range rows {
		line := []rune(scr.Line(top))
		if top != scr.CursorTop() {
			rows[top] = string(line)
			continue
		}
		left := scr.CursorLeft()
		for len(line) <= left {
			line = append(line, ' ')
		}
		rows[top] = string(line[:left]) + cursorStyle.Render(string(line[left])) + string(line[left+1:])
	}
	return strings.Join(rows, "\n")
}

func runTUI(cfg config.Config) error {
	p := tea.NewProgram(newTUIModel(cfg, afero.NewOsFs()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
