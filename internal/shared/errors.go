package shared

import "fmt"

var (
	// Input errors
	ErrNotFound = fmt.Errorf("input not found")
	ErrDecode   = fmt.Errorf("unable to decode input text")
	ErrNoInput  = fmt.Errorf("no input documents")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Argument validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
