// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for CUE conversion:
//  1. [FileListView] : Browse CUE documents discovered under a directory
//  2. [OptionsView] : Toggle rendering options before converting
//  3. [ConvertingView] : Monitor real-time progress updates
//  4. [ResultView] : Display the batch tally and failed documents
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Progress updates flow through a channel from the tasks package, providing non-blocking status reporting during conversion.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, space, a, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
