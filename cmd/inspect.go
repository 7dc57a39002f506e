package main

import (
	"context"
	"fmt"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/cue"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/playlist"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	"github.com/urfave/cli/v3"
)

// Inspect parses a CUE document and prints the resulting sheet without
// writing a playlist.
func (r *Runner) Inspect(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("%w: CUE file to inspect", shared.ErrMissingArgument)
	}

	r.logger.Info("inspecting document", "input", path)

	sheet, err := cue.ParseFile(path)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(sheet, cmd.Bool("pretty"))
	}

	title := sheet.Title
	if title == "" {
		title = "(untitled)"
	}
	r.writePlain("Album: %s\n", title)
	if sheet.Performer != "" {
		r.writePlain("Performer: %s\n", sheet.Performer)
	}
	if sheet.File != "" {
		r.writePlain("File: %s (%s)\n", sheet.File, sheet.FileType)
	}
	if sheet.SingleFile() {
		r.writePlain("Layout: single file image\n")
	} else {
		r.writePlain("Layout: one file per track\n")
	}
	r.writePlain("Tracks: %d\n\n", len(sheet.Tracks))

	for _, track := range sheet.Tracks {
		r.writePlain("%2d. %s", track.Number, playlist.DisplayTitle(sheet, track))
		if track.Index != "" {
			r.writePlain(" [%s]", track.Index)
		}
		if track.Duration > 0 {
			r.writePlain(" (%ds)", track.Duration)
		}
		r.writePlain("\n")
	}

	return nil
}

// inspectCommand handles parsing a sheet for display
func inspectCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "Parse a CUE sheet and show its tracks",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the parsed sheet as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Indent JSON output",
			},
		},
		Action: r.Inspect,
	}
}
