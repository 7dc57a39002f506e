package cue

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/models"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
)

// DefaultTrackDuration approximates the length of the last track of a
// single-file sheet, where no following INDEX exists to subtract from and the
// audio itself is never probed. It is a documented guess, not a measurement.
const DefaultTrackDuration = 180

var (
	fileRe   = regexp.MustCompile(`FILE\s+"(.+)"\s+(\w+)`)
	trackRe  = regexp.MustCompile(`TRACK\s+(\d+)\s+(\w+)`)
	indexRe  = regexp.MustCompile(`INDEX\s+(\d+)\s+(\d+):(\d+):(\d+)`)
	quotedRe = regexp.MustCompile(`"([^"]*)"`)
)

// Parse converts raw CUE text into a [models.Sheet], walking lines in order
// and tracking the currently open track.
//
// TITLE and PERFORMER target the open track when one exists, the sheet
// otherwise. FILE follows the same rule, so sheet-level FILE declarations
// become the inheritance default copied into each track as its TRACK block
// opens. Only INDEX 01 (the true start of a track, as opposed to the 00
// pre-gap) sets a timestamp. Unrecognized directives such as REM, CATALOG, or
// FLAGS are skipped, and malformed directive bodies leave fields at their
// zero values; the parse itself never fails beyond text decoding.
func Parse(raw []byte) (*models.Sheet, error) {
	text, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{}
	var current *models.Track

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "TITLE"):
			title := extractQuoted(line)
			if current != nil {
				current.Title = title
			} else {
				sheet.Title = title
			}

		case strings.HasPrefix(line, "PERFORMER"):
			performer := extractQuoted(line)
			if current != nil {
				current.Performer = performer
			} else {
				sheet.Performer = performer
			}

		case strings.HasPrefix(line, "FILE"):
			if m := fileRe.FindStringSubmatch(line); m != nil {
				if current != nil {
					current.File = m[1]
					current.FileType = m[2]
				} else {
					sheet.File = m[1]
					sheet.FileType = m[2]
				}
			}

		case strings.HasPrefix(line, "TRACK"):
			if current != nil {
				sheet.Tracks = append(sheet.Tracks, *current)
			}
			// New tracks inherit whichever FILE was last declared at
			// sheet level, not any later per-track override.
			current = &models.Track{File: sheet.File, FileType: sheet.FileType}
			if m := trackRe.FindStringSubmatch(line); m != nil {
				current.Number, _ = strconv.Atoi(m[1])
			}

		case strings.HasPrefix(line, "INDEX") && current != nil:
			if m := indexRe.FindStringSubmatch(line); m != nil && m[1] == "01" {
				minutes, _ := strconv.Atoi(m[2])
				seconds, _ := strconv.Atoi(m[3])
				frames, _ := strconv.Atoi(m[4])
				current.Index = fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, frames)
			}
		}
	}

	if current != nil {
		sheet.Tracks = append(sheet.Tracks, *current)
	}

	deriveDurations(sheet)

	return sheet, nil
}

// ParseFile reads and parses the CUE document at path. The sheet's Dir is set
// to the document's directory so relative audio references resolve against
// the sheet rather than the working directory.
func ParseFile(path string) (*models.Sheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	sheet, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if dir, err := filepath.Abs(filepath.Dir(path)); err == nil {
		sheet.Dir = dir
	}

	return sheet, nil
}

// extractQuoted returns the first double-quote-delimited substring on the
// line, or "" when the line carries no quoted value.
func extractQuoted(line string) string {
	if m := quotedRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// deriveDurations fills in track durations from consecutive INDEX 01
// positions. A track's length is the gap to the next track's start; the last
// track (or any track whose successor has no timestamp) gets
// [DefaultTrackDuration] on single-file sheets and stays 0 otherwise, since
// without probing the audio there is nothing to subtract from.
func deriveDurations(sheet *models.Sheet) {
	single := sheet.SingleFile()
	for i := range sheet.Tracks {
		track := &sheet.Tracks[i]
		if track.Index == "" {
			continue
		}
		if i+1 < len(sheet.Tracks) && sheet.Tracks[i+1].Index != "" {
			track.Duration = IndexSeconds(sheet.Tracks[i+1].Index) - IndexSeconds(track.Index)
		} else if single {
			track.Duration = DefaultTrackDuration
		}
	}
}
