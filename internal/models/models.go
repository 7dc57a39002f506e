// package models defines the data model for the CUE to M3U converter
package models

// Track represents a single track parsed from a CUE sheet.
type Track struct {
	Number    int    `json:"number"`              // 1-based position within the sheet
	Title     string `json:"title,omitempty"`     // Track title from the TITLE directive
	Performer string `json:"performer,omitempty"` // Track performer, empty when only set album-wide
	Index     string `json:"index,omitempty"`     // Start-of-track timestamp as zero-padded "MM:SS:FF"; empty when unknown
	File      string `json:"file,omitempty"`      // Audio file reference, inherited from the sheet when not overridden
	FileType  string `json:"file_type,omitempty"` // CUE file type tag (WAVE, MP3, FLAC, BINARY, ...)
	Duration  int    `json:"duration"`            // Derived length in seconds; 0 means unknown
}

// Sheet represents a parsed CUE document with album metadata and its tracks.
//
// Tracks preserve source order. A track whose File is empty falls back to the
// sheet-level File at render time.
type Sheet struct {
	Title     string  `json:"title,omitempty"`
	Performer string  `json:"performer,omitempty"`
	File      string  `json:"file,omitempty"`      // Sheet-level audio file, used when all tracks share one image
	FileType  string  `json:"file_type,omitempty"` // File type tag accompanying File
	Dir       string  `json:"-"`                   // Directory containing the source document; empty when parsed from memory
	Tracks    []Track `json:"tracks"`
}

// TrackFile returns the effective audio file for a track: the track's own
// reference, falling back to the sheet-level one.
func (s *Sheet) TrackFile(t Track) string {
	if t.File != "" {
		return t.File
	}
	return s.File
}

// TrackPerformer returns the effective performer for a track, falling back to
// the album performer.
func (s *Sheet) TrackPerformer(t Track) string {
	if t.Performer != "" {
		return t.Performer
	}
	return s.Performer
}

// SingleFile reports whether every track references the same audio file, i.e.
// the sheet describes one shared disc image rather than one file per track.
func (s *Sheet) SingleFile() bool {
	if len(s.Tracks) == 0 {
		return false
	}
	first := s.TrackFile(s.Tracks[0])
	if first == "" {
		return false
	}
	for _, t := range s.Tracks[1:] {
		if s.TrackFile(t) != first {
			return false
		}
	}
	return true
}
