package tasks

import (
	"path/filepath"
	"strings"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/cue"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/playlist"
)

// ConvertOpts configures a single-document conversion.
//
// Destination policy, first match wins: OutputPath names the playlist file
// directly, OutputDir places a derived filename inside a directory, and with
// neither set the playlist lands alongside the input with a .m3u extension.
type ConvertOpts struct {
	Render     playlist.Options
	OutputPath string
	OutputDir  string
}

// ConvertResult describes one successful conversion.
type ConvertResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Tracks int    `json:"tracks"`
}

// ConvertFile parses the CUE document at path and writes its playlist.
func ConvertFile(path string, opts ConvertOpts) (*ConvertResult, error) {
	sheet, err := cue.ParseFile(path)
	if err != nil {
		return nil, err
	}

	out := opts.OutputPath
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".m3u"
		if opts.OutputDir != "" {
			out = filepath.Join(opts.OutputDir, base)
		} else {
			out = filepath.Join(filepath.Dir(path), base)
		}
	}

	if err := playlist.WritePlaylist(sheet, opts.Render, out); err != nil {
		return nil, err
	}

	return &ConvertResult{Input: path, Output: out, Tracks: len(sheet.Tracks)}, nil
}
