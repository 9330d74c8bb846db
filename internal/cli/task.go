package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned when the user aborts a running task with ctrl+c
var ErrInterrupted = errors.New("interrupted")

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// TaskModel shows a spinner while run executes
type TaskModel struct {
	spinner spinner.Model
	title   string
	detail  string
	run     func() error
	running bool
	done    bool
	err     error
}

type taskCompleteMsg struct {
	err error
}

// NewTaskModel creates a spinner view around run
func NewTaskModel(title, detail string, run func() error) TaskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return TaskModel{
		spinner: s,
		title:   title,
		detail:  detail,
		run:     run,
		running: true,
	}
}

func (m TaskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runTask)
}

func (m TaskModel) runTask() tea.Msg {
	return taskCompleteMsg{err: m.run()}
}

func (m TaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.running = false
			m.done = true
			m.err = ErrInterrupted

			return m, tea.Quit
		}

	case taskCompleteMsg:
		m.running = false
		m.done = true
		m.err = msg.err

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m TaskModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("  ✗ %s failed\n", m.title))
		}

		return successStyle.Render(fmt.Sprintf("  ✓ %s done\n", m.title))
	}

	if m.running {
		return fmt.Sprintf("  %s %s\n  %s\n", m.spinner.View(), titleStyle.Render(m.title), detailStyle.Render(m.detail))
	}

	return ""
}

// Error returns the task result
func (m TaskModel) Error() error {
	return m.err
}

// RunTask runs fn behind a spinner rendered to out and waits for it.
// Interrupting the view cancels the context passed to fn.
func RunTask(ctx context.Context, out io.Writer, title, detail string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewTaskModel(title, detail, func() error { return fn(ctx) })
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	taskModel, ok := finalModel.(TaskModel)
	if !ok {
		return fmt.Errorf("unexpected model %T", finalModel)
	}

	return taskModel.Error()
}
