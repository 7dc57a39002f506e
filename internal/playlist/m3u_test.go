package playlist

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/models"
	th "github.com/EcoG-One/cue-to-m3u-converter/internal/testing"
)

func albumSheet() *models.Sheet {
	return &models.Sheet{
		Title:     "The Album",
		Performer: "The Artist",
		File:      "album.flac",
		FileType:  "WAVE",
		Tracks: []models.Track{
			{Number: 1, Title: "One", Index: "00:00:00", File: "album.flac", Duration: 210},
			{Number: 2, Title: "Two", Performer: "Guest", Index: "03:30:00", File: "album.flac", Duration: 225},
			{Number: 3, Index: "07:15:50", File: "album.flac", Duration: 180},
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("extended output", func(t *testing.T) {
		got := string(Render(albumSheet(), Options{Extended: true, RelativePaths: true}))

		want := "#EXTM3U\n" +
			"#EXTINF:210,The Artist - One\n" +
			"album.flac\n" +
			"#EXTINF:225,Guest - Two\n" +
			"album.flac\n" +
			"#EXTINF:180,Track 03\n" +
			"album.flac\n"
		if got != want {
			t.Errorf("rendered output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("simple output has no metadata lines", func(t *testing.T) {
		got := string(Render(albumSheet(), Options{RelativePaths: true}))
		if strings.Contains(got, "#EXTM3U") || strings.Contains(got, "#EXTINF") {
			t.Errorf("simple output should carry no extended lines:\n%s", got)
		}
		if len(strings.Split(strings.TrimRight(got, "\n"), "\n")) != 3 {
			t.Errorf("expected 3 path lines:\n%s", got)
		}
	})

	t.Run("absolute paths resolve against the sheet directory", func(t *testing.T) {
		sheet := albumSheet()
		sheet.Dir = filepath.Join(string(filepath.Separator), "music", "album")

		got := string(Render(sheet, Options{}))
		wantPath := filepath.Join(sheet.Dir, "album.flac")
		if !strings.Contains(got, wantPath+"\n") {
			t.Errorf("expected %q in output:\n%s", wantPath, got)
		}
	})

	t.Run("single file timestamp fragments", func(t *testing.T) {
		sheet := albumSheet()
		sheet.Tracks[1].Index = "00:20:37"

		got := string(Render(sheet, Options{RelativePaths: true, SingleFileTimestamps: true}))

		if !strings.Contains(got, "album.flac#t=0.000\n") {
			t.Errorf("missing first fragment:\n%s", got)
		}
		// 20 seconds + 37/75 frames = 20.493...
		if !strings.Contains(got, "album.flac#t=20.493\n") {
			t.Errorf("missing fractional fragment:\n%s", got)
		}
	})

	t.Run("timestamp fragments skipped on multi-file sheets", func(t *testing.T) {
		sheet := albumSheet()
		sheet.Tracks[2].File = "other.flac"

		got := string(Render(sheet, Options{RelativePaths: true, SingleFileTimestamps: true}))
		if strings.Contains(got, "#t=") {
			t.Errorf("multi-file sheet should not get fragments:\n%s", got)
		}
	})

	t.Run("inline error marker for unresolvable file", func(t *testing.T) {
		sheet := &models.Sheet{
			Tracks: []models.Track{{Number: 1, Title: "Orphan"}},
		}

		got := string(Render(sheet, Options{Extended: true, RelativePaths: true}))
		if !strings.Contains(got, "# ERROR: no source file for track 01") {
			t.Errorf("expected inline error marker:\n%s", got)
		}
		for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
			if line == "" {
				t.Errorf("blank line emitted:\n%s", got)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		sheet := albumSheet()
		opts := Options{Extended: true, SingleFileTimestamps: true, ExtMap: map[string]string{"flac": "wav"}}
		if !bytes.Equal(Render(sheet, opts), Render(sheet, opts)) {
			t.Error("two renders of the same sheet differ")
		}
	})

	t.Run("round trip preserves effective paths", func(t *testing.T) {
		sheet := albumSheet()
		got := string(Render(sheet, Options{Extended: true, RelativePaths: true}))

		var paths []string
		for _, line := range strings.Split(got, "\n") {
			if line != "" && !strings.HasPrefix(line, "#") {
				paths = append(paths, line)
			}
		}

		if len(paths) != len(sheet.Tracks) {
			t.Fatalf("expected %d path lines, got %d", len(sheet.Tracks), len(paths))
		}
		for i, track := range sheet.Tracks {
			if paths[i] != sheet.TrackFile(track) {
				t.Errorf("path %d = %q, want %q", i, paths[i], sheet.TrackFile(track))
			}
		}
	})
}

func TestDisplayTitle(t *testing.T) {
	sheet := &models.Sheet{Performer: "Album Artist"}

	tc := []struct {
		name  string
		track models.Track
		want  string
	}{
		{
			name:  "track performer wins",
			track: models.Track{Number: 1, Title: "Song", Performer: "Guest"},
			want:  "Guest - Song",
		},
		{
			name:  "falls back to album performer",
			track: models.Track{Number: 2, Title: "Song"},
			want:  "Album Artist - Song",
		},
		{
			name:  "synthesized when untitled",
			track: models.Track{Number: 7},
			want:  "Track 07",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayTitle(sheet, tt.track)
			if got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayTitleNoPerformer(t *testing.T) {
	sheet := &models.Sheet{}
	got := DisplayTitle(sheet, models.Track{Number: 1, Title: "Song"})
	if got != "Song" {
		t.Errorf("DisplayTitle() = %q, want bare title", got)
	}
}

func TestSubstituteExtension(t *testing.T) {
	extMap := map[string]string{"wav": "flac"}

	tc := []struct {
		name string
		path string
		want string
	}{
		{
			name: "exact match rewritten",
			path: "album.wav",
			want: "album.flac",
		},
		{
			name: "uppercase source matches",
			path: "album.WAV",
			want: "album.flac",
		},
		{
			name: "longer extension untouched",
			path: "album.wave",
			want: "album.wave",
		},
		{
			name: "unrelated extension untouched",
			path: "album.mp3",
			want: "album.mp3",
		},
		{
			name: "no extension untouched",
			path: "album",
			want: "album",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := substituteExtension(tt.path, extMap)
			if got != tt.want {
				t.Errorf("substituteExtension(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	t.Run("nil map is a no-op", func(t *testing.T) {
		if got := substituteExtension("album.wav", nil); got != "album.wav" {
			t.Errorf("got %q", got)
		}
	})
}

func TestWritePlaylist(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "nested", "album.m3u")

	if err := WritePlaylist(albumSheet(), Options{Extended: true, RelativePaths: true}, out); err != nil {
		t.Fatalf("WritePlaylist failed: %v", err)
	}

	th.AssertFileExists(t, out)
	content := th.MustReadFile(t, out)
	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Errorf("playlist missing header:\n%s", content)
	}
}
