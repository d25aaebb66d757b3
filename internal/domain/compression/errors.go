package compression

import (
	"errors"
	"fmt"
)

// ErrCancelled reports that a run was aborted by caller request. It is
// distinct from every other failure: resources are reclaimed, no output is
// produced, and no retry is implied.
var ErrCancelled = errors.New("compression cancelled")

// LoadError reports an unreadable, corrupt or unsupported source document.
type LoadError struct {
	Operation string
	Err       error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("load %s", e.Operation)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error.
func NewLoadError(operation string, err error) *LoadError {
	return &LoadError{Operation: operation, Err: err}
}

// RenderError reports a surface allocation or draw failure for one page.
type RenderError struct {
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render page %d: %v", e.Page, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new render error for the given 1-indexed page.
func NewRenderError(page int, err error) *RenderError {
	return &RenderError{Page: page, Err: err}
}

// EncodeError reports an image compression failure.
type EncodeError struct {
	Page int
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("encode page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("encode: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// NewEncodeError creates a new encode error for the given 1-indexed page.
func NewEncodeError(page int, err error) *EncodeError {
	return &EncodeError{Page: page, Err: err}
}

// ResourceError reports an allocation or assembly failure, including failures
// while appending to or finalizing the output document.
type ResourceError struct {
	Operation string
	Err       error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new resource error.
func NewResourceError(operation string, err error) *ResourceError {
	return &ResourceError{Operation: operation, Err: err}
}
