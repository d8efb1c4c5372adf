package vector

import (
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
)

// Context wraps a canvas drawing context with the export rendering
// options and a compositing cursor. Sources draw through it so that the
// color mode and text mode chosen for the export are applied uniformly,
// and so that origin translations between composited regions can be
// balanced and observed.
type Context struct {
	*canvas.Context

	colorMode ColorMode
	textMode  TextMode

	// cumulative origin translation applied via Translate
	dx, dy float64
}

// NewContext wraps ctx with the given rendering options.
func NewContext(ctx *canvas.Context, colorMode ColorMode, textMode TextMode) *Context {
	return &Context{Context: ctx, colorMode: colorMode, textMode: textMode}
}

func (c *Context) ColorMode() ColorMode { return c.colorMode }
func (c *Context) TextMode() TextMode   { return c.textMode }

// Translate moves the drawing origin and records the offset so that
// compositors can balance their translations.
func (c *Context) Translate(x, y float64) {
	c.dx += x
	c.dy += y
	c.Context.Translate(x, y)
}

// Offset returns the cumulative origin translation applied so far.
func (c *Context) Offset() (x, y float64) { return c.dx, c.dy }

// SetFillColor applies the color mode before forwarding to the canvas.
func (c *Context) SetFillColor(col color.Color) {
	c.Context.SetFillColor(c.convert(col))
}

// SetStrokeColor applies the color mode before forwarding to the canvas.
func (c *Context) SetStrokeColor(col color.Color) {
	c.Context.SetStrokeColor(c.convert(col))
}

func (c *Context) convert(col color.Color) color.Color {
	if c.colorMode == ColorModeGrayscale {
		return Grayscale(col)
	}
	return col
}

// Text draws a single line of text with its baseline at (x, y). In
// vectorized mode the glyphs are converted to filled paths using the
// current fill color; in native mode the text is drawn as-is and keeps
// the color of the face. Callers should keep the two in sync.
func (c *Context) Text(face *canvas.FontFace, x, y float64, s string) error {
	if s == "" {
		return nil
	}
	if c.textMode == TextModeVector {
		p, _, err := face.ToPath(s)
		if err != nil {
			return fmt.Errorf("vectorize text %q: %w", s, err)
		}
		c.Context.DrawPath(x, y, p)
		return nil
	}
	c.Context.DrawText(x, y, canvas.NewTextLine(face, s, canvas.Left))
	return nil
}
