// Package panel provides renderable panel regions and the compositor
// that assembles them onto a single export page. Regions draw in local
// coordinates (y-up, origin at their bottom-left corner) and are
// positioned by translating the drawing context's origin between
// renders.
package panel

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vgexport/vector"
)

// Panel is a leaf region: a fixed-size rectangle with a background fill
// and a draw callback for its contents. The callback draws in local
// coordinates and may return an error to abort the surrounding
// composition.
type Panel struct {
	Width      float64
	Height     float64
	Background color.Color

	// Draw renders the panel contents. The background has already been
	// filled when it runs.
	Draw func(ctx *vector.Context, p *Panel) error
}

// Render fills the background and runs the draw callback.
func (p *Panel) Render(ctx *vector.Context) error {
	if p.Background != nil {
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.SetFillColor(p.Background)
		ctx.DrawPath(0, 0, canvas.Rectangle(p.Width, p.Height))
	}
	if p.Draw == nil {
		return nil
	}
	return p.Draw(ctx, p)
}

// Foreground returns the contrast color for text and line work drawn
// on this panel's background.
func (p *Panel) Foreground() color.Color {
	if p.Background == nil {
		return color.Black
	}
	return vector.ForegroundFor(p.Background)
}

const (
	checkboxSide  = 12.0
	checkboxGap   = 6.0
	widgetInset   = 10.0
	checkboxLabel = 13.0 // label face size in pt
)

// drawLabel draws a single text line with its baseline at (x, y) in the
// panel foreground color.
func drawLabel(ctx *vector.Context, face *canvas.FontFace, fg color.Color, x, y float64, text string) error {
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(fg)
	return ctx.Text(face, x, y, text)
}

// drawCheckbox draws a square toggle with its label to the right. The
// box anchors at (x, y) bottom-left.
func drawCheckbox(ctx *vector.Context, face *canvas.FontFace, fg color.Color, x, y float64, label string, checked bool) error {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(fg)
	ctx.SetStrokeWidth(1.2)
	ctx.DrawPath(x, y, canvas.Rectangle(checkboxSide, checkboxSide))

	if checked {
		mark := &canvas.Path{}
		mark.MoveTo(2.5, 6.0)
		mark.LineTo(5.0, 3.0)
		mark.LineTo(9.5, 9.5)
		ctx.DrawPath(x, y, mark)
	}
	ctx.SetStrokeColor(canvas.Transparent)

	return drawLabel(ctx, face, fg, x+checkboxSide+checkboxGap, y+2.5, label)
}
