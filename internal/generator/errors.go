package generator

import "fmt"

// GenerationError wraps an unexpected failure during body assembly.
// Validation failures and unknown template references have their own
// types and are never wrapped.
type GenerationError struct {
	Name string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("code generation failed for command '%s': %v", e.Name, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
