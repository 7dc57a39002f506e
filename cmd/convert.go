package main

import (
	"context"
	"fmt"
	"os"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Convert converts one or more CUE documents to M3U playlists.
//
// A single file input converts inline and honors --output; multiple inputs or
// a directory run through the batch engine with per-document reporting.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("%w: at least one CUE file or directory", shared.ErrMissingArgument)
	}

	renderOpts, err := r.renderOptions(cmd)
	if err != nil {
		return err
	}

	outputPath := cmd.String("output")
	outputDir := cmd.String("output-dir")

	if len(inputs) == 1 && !isDirectory(inputs[0]) {
		r.logger.Info("converting document", "input", inputs[0])

		res, err := tasks.ConvertFile(inputs[0], tasks.ConvertOpts{
			Render:     renderOpts,
			OutputPath: outputPath,
			OutputDir:  outputDir,
		})
		if err != nil {
			return err
		}

		r.writePlain("✓ Converted %s -> %s (%d tracks)\n", res.Input, res.Output, res.Tracks)
		return nil
	}

	if outputPath != "" {
		r.logger.Warn("--output ignored when converting multiple documents")
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.Discover:
				r.writePlain("%s\n\n", update.Message)
			case tasks.ConvertDocument:
				if res, ok := update.Data.(tasks.DocumentResult); ok && res.Err != nil {
					r.writePlain("✗ %s\n", update.Message)
				} else {
					r.writePlain("✓ %s\n", update.Message)
				}
			}
		}
	}()

	result, err := tasks.Batch(ctx, progressCh, inputs, tasks.BatchOpts{
		Render:     tasks.ConvertOpts{Render: renderOpts, OutputDir: outputDir},
		NumWorkers: r.batchWorkers(cmd),
		RateLimit:  r.batchRate(cmd),
	})
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Conversion Complete")
	r.writePlain("Documents: %d converted, %d failed\n", result.Succeeded, result.Failed)
	r.writePlain("Tracks: %d total\n", result.TotalTracks)
	if result.ManifestPath != "" {
		r.writePlain("Manifest: %s\n", result.ManifestPath)
	}

	if result.Failed > 0 {
		r.writePlain("\nFailed documents:\n")
		for _, res := range result.Results {
			if res.Err != nil {
				r.writePlain("  - %s: %v\n", res.Input, res.Err)
			}
		}
	}

	return nil
}

// batchWorkers resolves the worker count: flag over config over engine default.
func (r *Runner) batchWorkers(cmd *cli.Command) int {
	if n := cmd.Int("workers"); n > 0 {
		return n
	}
	return r.config.Batch.Workers
}

// batchRate resolves the dispatch throttle: flag over config.
func (r *Runner) batchRate(cmd *cli.Command) float64 {
	if rl := cmd.Float("rate"); rl > 0 {
		return rl
	}
	return r.config.Batch.RateLimit
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// convertCommand handles CUE to M3U conversion
func convertCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"c"},
		Usage:     "Convert CUE sheets to M3U playlists",
		ArgsUsage: "<file-or-directory>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output playlist path (single input only)",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory to place generated playlists in",
			},
			&cli.BoolFlag{
				Name:  "simple",
				Usage: "Generate plain M3U without extended metadata lines",
			},
			&cli.BoolFlag{
				Name:  "absolute",
				Usage: "Write absolute paths instead of the paths stored in the sheet",
			},
			&cli.BoolFlag{
				Name:  "timestamps",
				Usage: "Append #t= start fragments for single-file sheets",
			},
			&cli.StringSliceFlag{
				Name:  "ext-map",
				Usage: "Rewrite entry extensions, e.g. --ext-map wav=flac (repeatable)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent workers for batch conversion",
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Documents dispatched per second in batch mode (0 = unlimited)",
			},
		},
		Action: r.Convert,
	}
}
