package tasks

import (
	"fmt"
	"path/filepath"
)

// ProgressUpdate represents a progress event during a batch conversion.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	Discover Phase = iota
	ConvertDocument
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case Discover:
		return "discover"
	case ConvertDocument:
		return "convert_document"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func discoveredUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Discover,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Found %d CUE document(s)", total),
	}
}

func convertedUpdate(step, total int, res DocumentResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ConvertDocument,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Converted %s -> %s (%d tracks)", res.Input, res.Output, res.Tracks),
		Data:    res,
	}
}

func failedUpdate(step, total int, res DocumentResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ConvertDocument,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed %s: %v", filepath.Base(res.Input), res.Err),
		Data:    res,
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Wrote manifest %s", path),
	}
}

// sendProgress delivers an update without blocking; slow or absent consumers
// never stall a conversion.
func sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
