// Command globetrot animates travel journeys on a terminal map. It takes an
// optional journey file (.json or .csv) as its first argument; without one,
// journeys can be picked from the current directory inside the UI.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"globetrot/internal/config"
	"globetrot/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [journey.json|journey.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	setupLogging(*logLevel)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "globetrot: %v\n", err)
		os.Exit(1)
	}

	var m tui.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, flag.Arg(0))
	} else {
		m = tui.New(cfg)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "globetrot: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging points slog at stderr so log lines do not corrupt the
// alt-screen UI on stdout.
func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}
