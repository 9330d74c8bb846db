package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Printer writes user-facing status lines. Colors are only emitted when the
// writer is a terminal and NO_COLOR is unset.
type Printer struct {
	out     io.Writer
	header  lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a printer bound to w
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		out:     w,
		header:  r.NewStyle().Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("86")),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Header prints a section title
func (p *Printer) Header(s string) {
	_, _ = fmt.Fprintln(p.out, p.header.Render(s))
}

// Item prints a single unstyled value, one per line
func (p *Printer) Item(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Info prints an informational line
func (p *Printer) Info(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.info.Render(fmt.Sprintf(format, args...)))
}

// Success prints a confirmation line
func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.success.Render(fmt.Sprintf(format, args...)))
}

// Error prints a reported, non-fatal error line
func (p *Printer) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.failure.Render(fmt.Sprintf(format, args...)))
}

// Prompt prints a question without a trailing newline
func (p *Printer) Prompt(s string) {
	_, _ = fmt.Fprint(p.out, s)
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
