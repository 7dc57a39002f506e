package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/shared"
	"golang.org/x/time/rate"
)

// BatchOpts contains configuration for multi-document conversions.
type BatchOpts struct {
	Render     ConvertOpts // Per-document options; OutputPath is ignored in batch mode
	NumWorkers int         // Concurrent workers (default 4, capped at 8)
	RateLimit  float64     // Documents dispatched per second (0 = unlimited)
}

// DocumentResult captures the outcome for one input document.
type DocumentResult struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Tracks int    `json:"tracks,omitempty"`
	Err    error  `json:"-"`
}

// BatchResult aggregates a whole batch run.
type BatchResult struct {
	RunID        string           `json:"run_id"`
	Total        int              `json:"total"`
	Succeeded    int              `json:"succeeded"`
	Failed       int              `json:"failed"`
	TotalTracks  int              `json:"total_tracks"`
	Results      []DocumentResult `json:"results"`
	ManifestPath string           `json:"-"`
}

// Batch converts multiple CUE documents concurrently.
//
// Inputs may be files or directories; directories expand to their immediate
// *.cue entries. Each document converts independently: one failure is
// recorded and reported but never stops the rest. When an output directory is
// configured a batch_manifest.json summary is written there as well.
func Batch(ctx context.Context, prog chan<- ProgressUpdate, inputs []string, opts BatchOpts) (*BatchResult, error) {
	docs, err := DiscoverDocuments(inputs)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no CUE documents in %v", shared.ErrNoInput, inputs)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	opts.Render.OutputPath = ""

	if opts.Render.OutputDir != "" {
		if err := os.MkdirAll(opts.Render.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	sendProgress(prog, discoveredUpdate(len(docs)))

	jobs := make(chan string, len(docs))
	results := make(chan DocumentResult, len(docs))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go convertWorker(ctx, &wg, jobs, results, opts.Render)
	}

	go func() {
		defer close(jobs)

		var limiter *rate.Limiter
		if opts.RateLimit > 0 {
			limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
		}

		for _, doc := range docs {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					return
				}
			}

			jobs <- doc
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &BatchResult{
		RunID:   shared.GenerateID(),
		Total:   len(docs),
		Results: make([]DocumentResult, 0, len(docs)),
	}

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Err == nil {
			result.Succeeded++
			result.TotalTracks += res.Tracks
			sendProgress(prog, convertedUpdate(completed, len(docs), res))
		} else {
			result.Failed++
			sendProgress(prog, failedUpdate(completed, len(docs), res))
		}
	}

	if opts.Render.OutputDir != "" {
		manifestPath := filepath.Join(opts.Render.OutputDir, "batch_manifest.json")
		if err := writeManifest(result, manifestPath); err != nil {
			return result, fmt.Errorf("conversion completed but failed to write manifest: %w", err)
		}
		result.ManifestPath = manifestPath
		sendProgress(prog, manifestUpdate(manifestPath))
	}

	return result, nil
}

// convertWorker drains the jobs channel, converting one document at a time.
func convertWorker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan string, results chan<- DocumentResult, opts ConvertOpts) {
	defer wg.Done()

	for path := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := ConvertFile(path, opts)
		if err != nil {
			results <- DocumentResult{Input: path, Err: err}
			continue
		}
		results <- DocumentResult{Input: res.Input, Output: res.Output, Tracks: res.Tracks}
	}
}

// DiscoverDocuments expands the given paths into individual CUE documents.
// Directories contribute their immediate *.cue entries (case-insensitive).
// Paths that do not exist pass through untouched so the missing-file error is
// reported per document rather than aborting discovery.
func DiscoverDocuments(inputs []string) ([]string, error) {
	var docs []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil || !info.IsDir() {
			docs = append(docs, input)
			continue
		}

		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", input, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".cue") {
				docs = append(docs, filepath.Join(input, entry.Name()))
			}
		}
	}
	return docs, nil
}

// manifestEntry is the serialized form of a DocumentResult; errors flatten to
// strings for the JSON summary.
type manifestEntry struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Tracks int    `json:"tracks,omitempty"`
	Error  string `json:"error,omitempty"`
}

type manifest struct {
	RunID       string          `json:"run_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Total       int             `json:"total"`
	Succeeded   int             `json:"succeeded"`
	Failed      int             `json:"failed"`
	TotalTracks int             `json:"total_tracks"`
	Documents   []manifestEntry `json:"documents"`
}

func writeManifest(result *BatchResult, path string) error {
	m := manifest{
		RunID:       result.RunID,
		CreatedAt:   time.Now().UTC(),
		Total:       result.Total,
		Succeeded:   result.Succeeded,
		Failed:      result.Failed,
		TotalTracks: result.TotalTracks,
		Documents:   make([]manifestEntry, 0, len(result.Results)),
	}
	for _, res := range result.Results {
		entry := manifestEntry{Input: res.Input, Output: res.Output, Tracks: res.Tracks}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		m.Documents = append(m.Documents, entry)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
