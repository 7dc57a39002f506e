package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgDocumentsLoaded MsgKind = iota
	MsgProgressUpdate
	MsgBatchComplete
)

// documentsLoadedMsg is the constructor for [MsgDocumentsLoaded]
func documentsLoadedMsg(docs []string, err error) Msg {
	return Msg{
		kind: MsgDocumentsLoaded,
		data: struct {
			docs []string
			err  error
		}{docs, err},
	}
}

// progressUpdateMsg is the constructor for [MsgProgressUpdate]
func progressUpdateMsg(update tasks.ProgressUpdate) Msg {
	return Msg{kind: MsgProgressUpdate, data: update}
}

// batchCompleteMsg is the constructor for [MsgBatchComplete]
func batchCompleteMsg(result *tasks.BatchResult, err error) Msg {
	return Msg{
		kind: MsgBatchComplete,
		data: struct {
			result *tasks.BatchResult
			err    error
		}{result, err},
	}
}
