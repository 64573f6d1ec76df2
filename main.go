package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/dotsheet/internal/config"
	"github.com/olivier-w/dotsheet/internal/interact"
	"github.com/olivier-w/dotsheet/internal/mesh"
	"github.com/olivier-w/dotsheet/internal/observability"
	"github.com/olivier-w/dotsheet/internal/render"
	"github.com/olivier-w/dotsheet/internal/sim"
	"github.com/olivier-w/dotsheet/internal/ui"
	"github.com/olivier-w/dotsheet/internal/window"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr, run))
}

// execute runs the command and returns the process exit code.
func execute(args []string, stderr io.Writer, run func(*config.Config) error) int {
	cmd := newRootCmd(run)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	// the terminal frontend owns the screen, so it only logs to a file
	var console zapcore.WriteSyncer
	if cfg.Display.Backend == config.BackendWindow {
		console = observability.Stderr()
	}
	logger := observability.New(cfg.Logger, console)
	defer observability.Sync(logger)

	style, err := render.ParseStyle(cfg.Display.Background, cfg.Display.Dot, cfg.Display.Hot, cfg.Display.Heat)
	if err != nil {
		return err
	}
	policy, err := interact.ParseReleasePolicy(cfg.Drag.Release)
	if err != nil {
		return err
	}

	s := sim.New(mesh.DefaultLayout, policy, logger)
	logger.Info("starting dotsheet",
		zap.String("backend", cfg.Display.Backend),
		zap.Stringer("release", policy),
		zap.Int("rows", mesh.DefaultLayout.Rows),
		zap.Int("cols", mesh.DefaultLayout.Cols))

	if cfg.Display.Backend == config.BackendWindow {
		return window.Run(window.NewGame(s, style, logger), cfg.Display.Title)
	}

	model := ui.New(s, style, cfg.Display.Title, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		logger.Error("terminal failed", zap.Error(err))
		return fmt.Errorf("terminal: %w", err)
	}
	logger.Info("quit", zap.Uint64("frames", s.Frames()))
	return nil
}
