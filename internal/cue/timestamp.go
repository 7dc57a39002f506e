package cue

import (
	"strconv"
	"strings"
)

// FramesPerSecond is the CD-audio subdivision of a second.
const FramesPerSecond = 75

// IndexSeconds converts a "MM:SS:FF" timestamp to whole seconds. The frame
// remainder is discarded, matching CD-frame resolution rounding down.
// Returns 0 for an empty or malformed timestamp.
func IndexSeconds(index string) int {
	m, s, f, ok := splitIndex(index)
	if !ok {
		return 0
	}
	return m*60 + s + f/FramesPerSecond
}

// IndexPreciseSeconds converts a "MM:SS:FF" timestamp to seconds keeping the
// frame remainder as a fraction, for seek offsets into a shared audio file.
func IndexPreciseSeconds(index string) float64 {
	m, s, f, ok := splitIndex(index)
	if !ok {
		return 0
	}
	return float64(m*60+s) + float64(f)/FramesPerSecond
}

func splitIndex(index string) (m, s, f int, ok bool) {
	parts := strings.Split(index, ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if m, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if s, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if f, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return m, s, f, true
}
