package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// taskDoneMsg carries the task result back into the bubbletea loop.
type taskDoneMsg struct {
	err error
}

// spinnerModel renders an animated status line while a task runs.
type spinnerModel struct {
	spinner spinner.Model
	message string
	run     func() error
	err     error
}

func newSpinnerModel(message string, run func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return spinnerModel{spinner: s, message: message, run: run}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return taskDoneMsg{err: m.run()} },
	)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		// Key presses are ignored; the task is not interruptible.
		return m, nil
	}
}

func (m spinnerModel) View() string {
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// WithSpinner runs fn while showing an animated status line on stderr.
// When stderr is not a terminal (pipes, CI) the task runs without UI.
func WithSpinner(message string, fn func() error) error {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return fn()
	}

	p := tea.NewProgram(newSpinnerModel(message, fn), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("spinner failed: %w", err)
	}
	return final.(spinnerModel).err
}
