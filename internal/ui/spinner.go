// Package ui provides terminal progress feedback for long-running commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Spinner shows activity while a command works. Stop must be called before
// any further output is written to the terminal.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// StartSpinner returns an animated spinner on a terminal and a plain
// line-printing fallback everywhere else.
func StartSpinner(w io.Writer, title string) Spinner {
	if isTerminal() {
		return newTeaSpinner(title)
	}
	return newLineSpinner(w, title)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// --- line spinner (no TTY) ---

type lineSpinner struct {
	w io.Writer
}

func newLineSpinner(w io.Writer, title string) *lineSpinner {
	s := &lineSpinner{w: w}
	s.SetTitle(title)
	return s
}

func (s *lineSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintln(s.w, "...", title)
}

func (s *lineSpinner) Stop() {}

// --- animated spinner (TTY) ---

type spinnerTitleMsg string

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

type teaSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newTeaSpinner(title string) *teaSpinner {
	p := tea.NewProgram(newSpinnerModel(title))
	s := &teaSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

func (s *teaSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *teaSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}
