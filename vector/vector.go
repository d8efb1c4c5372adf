// Package vector defines the drawing-context abstraction shared by the
// format exporters: a renderable source, its bounding box in page units,
// and the rendering options applied while replaying its draw routine.
package vector

// Source is anything that can replay its visual contents onto a drawing
// context: a panel, a chart, or any other renderable object. Bounds
// reports the source's bounding box in page units (y-up); Render draws
// the contents using coordinates local to that box.
//
// A Source must be renderable repeatedly; it holds no per-render state.
type Source interface {
	Bounds() Bounds
	Render(ctx *Context) error
}

// Bounds is an axis-aligned bounding box in page units.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Valid reports whether the box has positive area.
func (b Bounds) Valid() bool { return b.Width() > 0 && b.Height() > 0 }

// ColorMode selects the color treatment of the exported document.
type ColorMode int

const (
	ColorModeRGB ColorMode = iota
	ColorModeGrayscale
)

func (m ColorMode) String() string {
	if m == ColorModeGrayscale {
		return "grayscale"
	}
	return "rgb"
}

// TextMode selects how text is rendered into the document: vectorized
// glyph outlines avoid missing-font problems downstream, native text
// keeps the document searchable.
type TextMode int

const (
	TextModeVector TextMode = iota
	TextModeNative
)

func (m TextMode) String() string {
	if m == TextModeNative {
		return "native"
	}
	return "vector"
}
