package app

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger builds the application slog logger on a charmbracelet handler
// with per-level colors.
func newLogger(level string) *slog.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           parsed,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"})
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"})
	handler.SetStyles(styles)

	return slog.New(handler)
}
