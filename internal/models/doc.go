// Package models defines the value types shared by the parser, renderer, and
// conversion tasks.
//
// Both types are transient: a [Sheet] is constructed once by internal/cue from
// a single CUE document, has its track durations derived in a post-pass, and
// is then consumed read-only by internal/playlist.
//
//   - [Sheet] : Album-level metadata plus the ordered track list
//   - [Track] : Per-track metadata with the derived duration in seconds
//
// Inheritance rules (which FILE a track plays from, which PERFORMER labels it)
// are resolved lazily via [Sheet.TrackFile] and [Sheet.TrackPerformer] so the
// parsed values stay faithful to the source document.
package models
