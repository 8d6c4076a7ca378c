package hubsite

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrMalformedSeed indicates the seed document could not be decoded
	// into the expected schema. Fatal at startup: the server must not
	// start serving with no content.
	ErrMalformedSeed = errors.New("malformed seed document")

	// ErrMalformedPromo indicates the promo document could not be
	// decoded. Non-fatal: the caller proceeds with zero promo slides.
	ErrMalformedPromo = errors.New("malformed promo document")

	// ErrNotFound indicates a requested slug has no corresponding record.
	ErrNotFound = errors.New("entity not found")

	// ErrRenderFailed indicates the template engine failed to produce
	// markup for a valid context.
	ErrRenderFailed = errors.New("template render failed")
)

// SeedError wraps a failure to load or decode a startup document.
type SeedError struct {
	Path string
	Op   string
	Err  error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed operation %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

// RenderError wraps a template failure with the template identifier, so
// the HTTP layer can log which page broke while still matching
// ErrRenderFailed.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed for template %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}
