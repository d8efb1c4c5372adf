package export

import "errors"

var (
	// ErrNilSource is returned when an export is attempted without a
	// renderable source.
	ErrNilSource = errors.New("export: nil source")

	// ErrEmptyBounds is returned when the source reports a bounding box
	// without area, which would make the fit transform degenerate.
	ErrEmptyBounds = errors.New("export: source bounds are empty")
)

// RenderError reports that the source's render did not complete. The
// exporters still serialize and write the partially assembled document
// before returning it, so callers can distinguish a truncated export
// from a sink I/O failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "export: render incomplete: " + e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }
