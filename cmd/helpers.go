package cmd

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/inovacc/hxcm/internal/cli"
	"github.com/inovacc/hxcm/internal/core"
)

// newAsk returns a line-based prompt reading answers from in.
// Only the line terminator is stripped from the answer.
func newAsk(p *cli.Printer, in io.Reader) core.AskFunc {
	reader := bufio.NewReader(in)

	return func(question string) (string, error) {
		p.Prompt(question)

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", err
		}

		return trimLineEnding(line), nil
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// newLogger creates the diagnostics logger written to w.
// Warnings and errors only, unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
