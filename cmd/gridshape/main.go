// gridshape is a terminal shape editor: draw lines, rectangles and
// circles on an integer grid, join rooms with corridors, and step
// through shape scripts.
//
// Run: GOWORK=off go run ./cmd/gridshape/ -script dungeon.js -log gridshape.log
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/gridshape/internal/shapescript"
	"github.com/wesen/gridshape/internal/viewer"
	"github.com/wesen/gridshape/pkg/grid"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "shape script to load (default: built-in demo)")
		run        = flag.Bool("run", false, "run the script before showing the editor")
		logPath    = flag.String("log", "", "write logs to this file")
		debug      = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	if *logPath != "" {
		closeLog, err := setupLogging(*logPath, *debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	src, name := shapescript.Demo, "gridshape"
	if *scriptPath != "" {
		b, err := os.ReadFile(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		src, name = string(b), *scriptPath
	}

	p := tea.NewProgram(viewer.NewModel(viewer.Options{
		Name:   name,
		Script: src,
		Run:    *run,
	}))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the library logger to a file; the terminal belongs
// to the TUI.
func setupLogging(path string, debug bool) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	grid.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { _ = f.Close() }, nil
}
