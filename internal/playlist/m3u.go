// package playlist renders parsed CUE sheets as M3U playlist text
package playlist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/cue"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/models"
)

// Options control M3U rendering.
type Options struct {
	Extended             bool              // Emit the #EXTM3U header and per-track #EXTINF lines
	RelativePaths        bool              // Keep paths as stored in the sheet instead of resolving to absolute
	SingleFileTimestamps bool              // Append #t=<seconds> start fragments on single-file sheets
	ExtMap               map[string]string // Source extension -> replacement (without dots), exact match only
}

// Render converts a sheet to M3U playlist text.
//
// Per track: an #EXTINF metadata line when extended, then the effective audio
// path. Tracks with no resolvable file produce a visible inline error comment
// rather than a blank entry. Render performs no I/O and is idempotent: the
// same sheet and options always produce byte-identical output.
func Render(sheet *models.Sheet, opts Options) []byte {
	var buf bytes.Buffer

	if opts.Extended {
		buf.WriteString("#EXTM3U\n")
	}

	single := sheet.SingleFile()
	for _, track := range sheet.Tracks {
		if opts.Extended {
			fmt.Fprintf(&buf, "#EXTINF:%d,%s\n", track.Duration, DisplayTitle(sheet, track))
		}

		path := sheet.TrackFile(track)
		if path == "" {
			fmt.Fprintf(&buf, "# ERROR: no source file for track %02d\n", track.Number)
			continue
		}

		path = substituteExtension(path, opts.ExtMap)
		if !opts.RelativePaths {
			path = absolutePath(sheet, path)
		}
		if opts.SingleFileTimestamps && single && track.Index != "" {
			path = fmt.Sprintf("%s#t=%.3f", path, cue.IndexPreciseSeconds(track.Index))
		}

		buf.WriteString(path)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// DisplayTitle builds the human-readable entry title: "Performer - Title"
// when both are known (the performer falling back to the album's), the bare
// title otherwise, or a synthesized "Track NN" when the sheet carries no
// title at all.
func DisplayTitle(sheet *models.Sheet, track models.Track) string {
	performer := sheet.TrackPerformer(track)
	switch {
	case performer != "" && track.Title != "":
		return fmt.Sprintf("%s - %s", performer, track.Title)
	case track.Title != "":
		return track.Title
	default:
		return fmt.Sprintf("Track %02d", track.Number)
	}
}

// WritePlaylist renders the sheet and writes the result to path, creating
// parent directories as needed.
func WritePlaylist(sheet *models.Sheet, opts Options, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, Render(sheet, opts), 0644); err != nil {
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	return nil
}

// substituteExtension rewrites the path's extension when it appears in the
// substitution map. Purely textual: "album.wav" -> "album.flac" with
// {"wav": "flac"}, while "album.wave" is left alone.
func substituteExtension(path string, extMap map[string]string) string {
	if len(extMap) == 0 {
		return path
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return path
	}
	repl, ok := extMap[strings.ToLower(ext)]
	if !ok {
		return path
	}
	return strings.TrimSuffix(path, ext) + repl
}

// absolutePath resolves a stored path against the sheet's own directory, so
// playlists stay correct no matter where the converter was invoked from.
func absolutePath(sheet *models.Sheet, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if sheet.Dir != "" {
		return filepath.Join(sheet.Dir, path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
