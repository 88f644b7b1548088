// Package clilog builds the structured logger shared by the cmd/ programs.
package clilog

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the given prefix and level name
// ("debug", "info", "warn", "error"). Keys used by the demos get fixed colors.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("clilog: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: true,
	})

	styles := log.DefaultStyles()
	key := lipgloss.NewStyle().Bold(true)
	for name, color := range map[string]string{
		"algorithm": "39",
		"found":     "42",
		"player":    "213",
		"err":       "204",
	} {
		styles.Keys[name] = key.Foreground(lipgloss.Color(color))
	}
	logger.SetStyles(styles)

	return logger, nil
}
