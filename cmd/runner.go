package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/playlist"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. for file-backed logging under the TUI.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		convertCommand, inspectCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configRenderOptions builds rendering options from config-file defaults.
func (r *Runner) configRenderOptions() playlist.Options {
	opts := playlist.Options{
		Extended:             r.config.Output.Extended,
		RelativePaths:        !r.config.Output.AbsolutePaths,
		SingleFileTimestamps: r.config.Output.Timestamps,
	}

	if len(r.config.Output.Substitutions) > 0 {
		opts.ExtMap = make(map[string]string, len(r.config.Output.Substitutions))
		for src, dst := range r.config.Output.Substitutions {
			opts.ExtMap[strings.ToLower(src)] = dst
		}
	}

	return opts
}

// renderOptions merges config-file defaults with per-invocation flags.
func (r *Runner) renderOptions(cmd *cli.Command) (playlist.Options, error) {
	opts := r.configRenderOptions()

	if cmd.Bool("simple") {
		opts.Extended = false
	}
	if cmd.Bool("absolute") {
		opts.RelativePaths = false
	}
	if cmd.Bool("timestamps") {
		opts.SingleFileTimestamps = true
	}

	if pairs := cmd.StringSlice("ext-map"); len(pairs) > 0 {
		m, err := parseExtMap(pairs)
		if err != nil {
			return opts, err
		}
		if opts.ExtMap == nil {
			opts.ExtMap = m
		} else {
			for src, dst := range m {
				opts.ExtMap[src] = dst
			}
		}
	}

	return opts, nil
}

// parseExtMap parses repeated "src=dst" flag values into a substitution map.
// Leading dots and surrounding whitespace are tolerated.
func parseExtMap(pairs []string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		src, dst, ok := strings.Cut(pair, "=")
		src = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(src), "."))
		dst = strings.TrimPrefix(strings.TrimSpace(dst), ".")
		if !ok || src == "" || dst == "" {
			return nil, fmt.Errorf("%w: ext-map entry %q (want src=dst)", shared.ErrInvalidFlag, pair)
		}
		m[src] = dst
	}
	return m, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
