package vector

import "github.com/tdewolff/canvas"

// Conversion constants between pt and mm. Page dimensions are carried in
// points throughout; the canvas boundary works in mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// FitTransform returns the affine matrix that maps the source bounding
// box exactly onto a pageWidth×pageHeight rectangle anchored at the
// origin. Both spaces are y-up, so no axis flip is involved; the SVG
// backend's top-left origin convention is handled inside its renderer.
func FitTransform(b Bounds, pageWidth, pageHeight float64) canvas.Matrix {
	sx := pageWidth / b.Width()
	sy := pageHeight / b.Height()
	return canvas.Identity.Scale(sx, sy).Translate(-b.MinX, -b.MinY)
}
