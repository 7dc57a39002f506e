package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	tu "github.com/EcoG-One/cue-to-m3u-converter/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config")
			}
			if runner.logger == nil {
				t.Error("expected default logger")
			}
			if runner.output == nil {
				t.Error("expected default output")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) != 4 {
			t.Errorf("expected 4 commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"convert", "inspect", "setup", "tui"} {
			if !names[want] {
				t.Errorf("missing command %q", want)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		data := map[string]string{"key": "value"}
		if err := runner.writeJSON(data, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if !strings.Contains(output.String(), `"key":"value"`) {
			t.Errorf("unexpected output: %s", output.String())
		}

		output.Reset()
		if err := runner.writeJSON(data, true); err != nil {
			t.Fatalf("writeJSON pretty failed: %v", err)
		}
		if !strings.Contains(output.String(), "  \"key\": \"value\"") {
			t.Errorf("expected indented output: %s", output.String())
		}
	})

	t.Run("writeJSON failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
		if err := runner.writeJSON("data", false); err == nil {
			t.Error("expected error from failing writer")
		}
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s\n", "world"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if output.String() != "hello world\n" {
			t.Errorf("got %q", output.String())
		}

		if err := NewRunner(RunnerOpts{Output: &tu.FWriter{}}).writePlain("x"); err == nil {
			t.Error("expected error from failing writer")
		}
	})

	t.Run("configRenderOptions", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Output.Extended = false
		config.Output.AbsolutePaths = true
		config.Output.Timestamps = true
		config.Output.Substitutions = map[string]string{"WAV": "flac"}

		runner := NewRunner(RunnerOpts{Config: config})
		opts := runner.configRenderOptions()

		if opts.Extended {
			t.Error("expected extended = false")
		}
		if opts.RelativePaths {
			t.Error("absolute_paths should disable relative paths")
		}
		if !opts.SingleFileTimestamps {
			t.Error("expected timestamps on")
		}
		if opts.ExtMap["wav"] != "flac" {
			t.Errorf("substitution keys should be lowercased: %v", opts.ExtMap)
		}
	})
}

func TestParseExtMap(t *testing.T) {
	tc := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "basic pair",
			pairs: []string{"wav=flac"},
			want:  map[string]string{"wav": "flac"},
		},
		{
			name:  "dots and case tolerated",
			pairs: []string{".WAV=.flac"},
			want:  map[string]string{"wav": "flac"},
		},
		{
			name:  "multiple pairs",
			pairs: []string{"wav=flac", "ape=flac"},
			want:  map[string]string{"wav": "flac", "ape": "flac"},
		},
		{
			name:    "missing separator",
			pairs:   []string{"wavflac"},
			wantErr: true,
		},
		{
			name:    "empty destination",
			pairs:   []string{"wav="},
			wantErr: true,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExtMap(tt.pairs)

			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidFlag) {
					t.Errorf("expected ErrInvalidFlag, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseExtMap failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for src, dst := range tt.want {
				if got[src] != dst {
					t.Errorf("got[%q] = %q, want %q", src, got[src], dst)
				}
			}
		})
	}
}
