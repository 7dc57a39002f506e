// Package tasks orchestrates CUE-to-M3U conversions on behalf of the CLI and
// TUI layers.
//
// # Core Operations
//
//  1. [ConvertFile] : Parse one CUE document and write its playlist, with the
//     destination chosen by [ConvertOpts] (explicit path, output directory,
//     or alongside the input).
//
//  2. [Batch] : Convert many documents through a bounded worker pool.
//     - Inputs expand via [DiscoverDocuments] (files or directories)
//     - Documents fail independently; the batch always runs to completion
//     - An optional rate limiter throttles dispatch for slow filesystems
//     - A batch_manifest.json summary lands in the output directory
//
// # Progress Reporting
//
// Both layers consume [ProgressUpdate] values over a channel. Updates use
// select with default so a slow consumer never blocks conversion work.
//
// Output paths derive from input basenames, so a batch pointed at one output
// directory assumes distinct input names; documents otherwise convert
// independently and may safely run in parallel.
package tasks
