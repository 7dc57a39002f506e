// Package cue parses CUE sheet documents into the [models.Sheet] structure.
//
// Parsing is line-oriented, stateful, and deliberately forgiving: the
// directive-per-line grammar is walked once, anything unrecognized is
// skipped, and malformed directive bodies degrade to empty fields instead of
// aborting the document. The only hard failure is [shared.ErrDecode], raised
// when the byte-to-text fallback chain in [Decode] is exhausted.
//
// After the line walk a post-pass derives per-track durations from
// consecutive INDEX 01 positions (75 CD frames per second, remainders
// discarded). Last-track durations cannot be computed without probing the
// audio itself, so single-file sheets receive the [DefaultTrackDuration]
// placeholder and multi-file sheets report 0 ("unknown").
package cue
