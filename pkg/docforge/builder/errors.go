package builder

import "fmt"

// RenderError reports an unrecoverable encoding fault in a builder.
type RenderError struct {
	Format string // target format ("pdf", "docx", "pptx")
	Stage  string // what was being encoded
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s (%s): %v", e.Format, e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(format, stage string, err error) *RenderError {
	return &RenderError{Format: format, Stage: stage, Err: err}
}
