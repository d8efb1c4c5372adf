// Package export holds the options and the shared render step used by
// the per-format exporters in the eps, svg and pdf subpackages. An
// export replays a renderable source against a page-sized drawing
// context and hands the assembled document to a format backend for
// serialization.
package export

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vgexport/vector"
)

// Options configures one export call. The zero value is usable: it
// selects a North American Letter page, RGB colors and vectorized text.
type Options struct {
	// Title is the document title. The SVG exporter substitutes a fixed
	// placeholder when it is empty; EPS and PDF pass it through
	// unmodified (empty means no metadata entry).
	Title string

	// Creator names the producing application, recorded as the EPS
	// creator and the PDF author/creator. Empty is permitted.
	Creator string

	// Page dimensions in points (1/72 inch). There are no limits on
	// allowed values; zero means the Letter default.
	PageWidth  float64
	PageHeight float64

	ColorMode vector.ColorMode
	TextMode  vector.TextMode
}

// WithDefaults fills in the Letter page size for unset dimensions.
func (o Options) WithDefaults() Options {
	if o.PageWidth <= 0 {
		o.PageWidth = vector.LetterWidth
	}
	if o.PageHeight <= 0 {
		o.PageHeight = vector.LetterHeight
	}
	return o
}

// Render replays src onto a canvas sized to the page given in opts,
// with the source-to-page fit transform applied as the context view.
// Page points are converted to canvas millimeters at this boundary.
//
// A failed or partial render returns the canvas together with a
// *RenderError: the document assembled up to the failure is still
// serializable, matching screen-capture semantics. Hard errors (nil
// source, empty bounds) return a nil canvas.
func Render(src vector.Source, opts Options) (*canvas.Canvas, error) {
	return RenderSized(src, opts, opts.PageWidth*vector.PtToMm, opts.PageHeight*vector.PtToMm)
}

// RenderSized is Render with explicit canvas dimensions. The
// dimensions are in canvas units: millimeters for backends that
// convert them on output (PDF, SVG), points for the PostScript
// backend, which copies its dimensions verbatim into the document
// header.
func RenderSized(src vector.Source, opts Options, width, height float64) (*canvas.Canvas, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	b := src.Bounds()
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrEmptyBounds, b)
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetView(vector.FitTransform(b, width, height))

	if err := src.Render(vector.NewContext(ctx, opts.ColorMode, opts.TextMode)); err != nil {
		return c, &RenderError{Err: err}
	}
	return c, nil
}
