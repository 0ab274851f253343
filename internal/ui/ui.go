// Package ui handles terminal presentation: styled status lines when
// stderr is interactive, timestamped plain logs otherwise.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var (
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	readyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// IsInteractive reports whether stderr is connected to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StdoutIsTerminal reports whether stdout is connected to a terminal,
// as opposed to a pipe.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Errorf prints an error line to stderr, styled when interactive.
func Errorf(format string, args ...any) {
	line := fmt.Sprintf("error: "+format, args...)
	if IsInteractive() {
		line = errorStyle.Render(line)
	}
	fmt.Fprintln(os.Stderr, line)
}

// Readyf prints a readiness line to stderr, with a check mark when
// interactive.
func Readyf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if IsInteractive() {
		line = readyStyle.Render("✓ " + line)
	}
	fmt.Fprintln(os.Stderr, line)
}

// Statusf prints a progress line to stderr, styled when interactive.
func Statusf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if IsInteractive() {
		line = statusStyle.Render(line)
	}
	fmt.Fprintln(os.Stderr, line)
}

// CLFTimestamp formats t in Common Log Format: DD/Mon/YYYY:HH:MM:SS +0000.
func CLFTimestamp(t time.Time) string {
	return t.UTC().Format("02/Jan/2006:15:04:05 -0700")
}

// NewLogger builds the stderr console logger used outside tests.
func NewLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
