package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = cueItem{}

// cueItem wraps a discovered CUE document path to implement [list.Item].
type cueItem struct {
	path string
}

func (i cueItem) FilterValue() string { return filepath.Base(i.path) }
func (i cueItem) Title() string       { return filepath.Base(i.path) }
func (i cueItem) Description() string { return filepath.Dir(i.path) }
