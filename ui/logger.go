package ui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// InitLogger initializes and configures a Charm logger on stderr
func InitLogger(verbose bool) *log.Logger {
	return newLogger(os.Stderr, verbose)
}

// InitTUILogger returns a logger that stays off the terminal while the TUI
// owns it. Verbose output goes to path instead; close must be called on exit.
func InitTUILogger(path string, verbose bool) (*log.Logger, func() error, error) {
	if !verbose {
		return newLogger(io.Discard, false), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "ghfind")
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, true), f.Close, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: verbose,
		Prefix:          "ghfind",
	})

	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}
