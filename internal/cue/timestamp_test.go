package cue

import (
	"math"
	"testing"
)

func TestIndexSeconds(t *testing.T) {
	tc := []struct {
		name  string
		index string
		want  int
	}{
		{
			name:  "frames round down",
			index: "03:02:37",
			want:  182,
		},
		{
			name:  "zero",
			index: "00:00:00",
			want:  0,
		},
		{
			name:  "frames below one second are discarded",
			index: "00:00:74",
			want:  0,
		},
		{
			name:  "frames carry into seconds",
			index: "00:01:75",
			want:  2,
		},
		{
			name:  "minutes only",
			index: "10:00:00",
			want:  600,
		},
		{
			name:  "empty",
			index: "",
			want:  0,
		},
		{
			name:  "too few fields",
			index: "03:02",
			want:  0,
		},
		{
			name:  "non-numeric field",
			index: "aa:02:37",
			want:  0,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexSeconds(tt.index)
			if got != tt.want {
				t.Errorf("IndexSeconds(%q) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestIndexPreciseSeconds(t *testing.T) {
	tc := []struct {
		name  string
		index string
		want  float64
	}{
		{
			name:  "whole seconds",
			index: "03:30:00",
			want:  210,
		},
		{
			name:  "fractional frames",
			index: "00:20:37",
			want:  20 + 37.0/75.0,
		},
		{
			name:  "malformed",
			index: "bogus",
			want:  0,
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexPreciseSeconds(tt.index)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IndexPreciseSeconds(%q) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}
