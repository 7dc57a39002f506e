package main

import (
	"context"
	"fmt"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing and converting CUE sheets.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.Log.File
	if logPath == "" {
		logPath = "./tmp/cuem3u.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, dir, r.configRenderOptions(), ui.BatchSettings{
		Workers:   r.config.Batch.Workers,
		RateLimit: r.config.Batch.RateLimit,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Interactively pick and convert CUE sheets",
		ArgsUsage: "[directory]",
		Action:    r.TUI,
	}
}
