// Package cli provides the terminal output components for hxcm.
//
// The package uses [Lipgloss] for styling status lines and [Bubbletea] with a
// [Bubbles] spinner to show progress while git runs on an interactive terminal.
// When stdout is not a terminal, styles render as plain text and git output is
// streamed unchanged.
//
// # Components
//
//   - Printer: styled header, item, info, success and error lines
//   - TaskModel: spinner view around a blocking task (clone, pull)
//   - SpinnerGit: git client adapter that runs each command inside a TaskModel
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Bubbles]: https://github.com/charmbracelet/bubbles
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
