package panel

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vgexport/fonts"
	"github.com/ByLCY/vgexport/vector"
)

// Layout holds the spacing applied while compositing a Group. The
// offsets are configuration, not layout law; tune them to match the
// page aspect ratio of the target paper.
type Layout struct {
	Margin       float64 // border around the whole group
	TitleHeight  float64 // height of the title band at the top
	TitlePadding float64 // gap between the title band and the top region
	RegionGap    float64 // gap between the top region and the bottom row
	TitleSize    float64 // title face size in pt
}

// DefaultLayout matches the spacing of the on-screen demo panel.
var DefaultLayout = Layout{
	Margin:       10,
	TitleHeight:  28,
	TitlePadding: 8,
	RegionGap:    20,
	TitleSize:    18,
}

// Group composites a title header, one top region and two side-by-side
// bottom regions into a shared drawing context by translating the
// context origin between the sub-renders. It implements vector.Source.
type Group struct {
	title      string
	background color.Color
	layout     Layout

	top         *Panel
	bottomLeft  *Panel
	bottomRight *Panel
}

var _ vector.Source = (*Group)(nil)

// NewDemo builds the example group: an asymmetric grid of labels and
// checkboxes exercising per-region compositing the way a typical
// application panel hierarchy would.
func NewDemo() *Group {
	g := &Group{
		layout:      DefaultLayout,
		top:         labeledPanel(240, 120, "Goodbye", canvas.FontBold, 48, "Maybe"),
		bottomLeft:  labeledPanel(180, 100, "Cruel", canvas.FontItalic, 36, "Yes"),
		bottomRight: labeledPanel(180, 100, "World", canvas.FontItalic, 36, "No"),
	}
	g.SetBackground(canvas.White)
	return g
}

// SetTitle sets the document title drawn in the header band.
func (g *Group) SetTitle(title string) { g.title = title }

// Title returns the current header title.
func (g *Group) Title() string { return g.title }

// SetLayout replaces the compositing offsets.
func (g *Group) SetLayout(l Layout) { g.layout = l }

// SetBackground applies a background color to the whole panel
// hierarchy; foreground colors are derived from it at draw time so text
// is never masked by its background.
func (g *Group) SetBackground(col color.Color) {
	g.background = col
	for _, p := range []*Panel{g.top, g.bottomLeft, g.bottomRight} {
		p.Background = col
	}
}

// Bounds reports the page-unit bounding box of the composited layout.
func (g *Group) Bounds() vector.Bounds {
	l := g.layout
	width := 2*l.Margin + math.Max(g.top.Width, g.bottomLeft.Width+g.bottomRight.Width)
	height := 2*l.Margin + l.TitleHeight + l.TitlePadding + g.top.Height +
		l.RegionGap + math.Max(g.bottomLeft.Height, g.bottomRight.Height)
	return vector.Bounds{MaxX: width, MaxY: height}
}

// Render composites the header and the three regions. Sub-regions are
// positioned by translating the context origin; a failing region
// short-circuits its remaining siblings. The background swap to white
// (paper-friendly colors) and the origin are restored on every return
// path.
func (g *Group) Render(ctx *vector.Context) error {
	prev := g.background
	g.SetBackground(canvas.White)
	defer g.SetBackground(prev)

	startX, startY := ctx.Offset()
	defer func() {
		x, y := ctx.Offset()
		ctx.Translate(startX-x, startY-y)
	}()

	b := g.Bounds()
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(g.background)
	ctx.DrawPath(b.MinX, b.MinY, canvas.Rectangle(b.Width(), b.Height()))

	if err := g.drawTitle(ctx, b); err != nil {
		return err
	}

	l := g.layout
	rowHeight := math.Max(g.bottomLeft.Height, g.bottomRight.Height)

	// Top region, just below the title band.
	ctx.Translate(l.Margin, b.MaxY-l.Margin-l.TitleHeight-l.TitlePadding-g.top.Height)
	if err := g.top.Render(ctx); err != nil {
		return err
	}

	// Advance the vertical cursor past the top region onto the bottom
	// row. Page coordinates run bottom-up, so the step down covers the
	// row height plus the region gap.
	ctx.Translate(0, -(rowHeight + l.RegionGap))
	if err := g.bottomLeft.Render(ctx); err != nil {
		return err
	}

	// Shift right by the just-rendered region's width for the second
	// region of the row, then revert so any further content left-aligns
	// below the row.
	ctx.Translate(g.bottomLeft.Width, 0)
	err := g.bottomRight.Render(ctx)
	ctx.Translate(-g.bottomLeft.Width, 0)
	return err
}

func (g *Group) drawTitle(ctx *vector.Context, b vector.Bounds) error {
	if g.title == "" {
		return nil
	}
	family, err := fonts.Family()
	if err != nil {
		return err
	}
	fg := vector.ForegroundFor(g.background)
	face := family.Face(g.layout.TitleSize, fg, canvas.FontBold, canvas.FontNormal)

	x := b.MinX + (b.Width()-face.TextWidth(g.title))/2
	baseline := b.MaxY - g.layout.Margin - g.layout.TitleHeight + face.Metrics().Descent
	return drawLabel(ctx, face, fg, x, baseline, g.title)
}

// labeledPanel builds a demo region holding one large label with a
// checkbox underneath, the same content mix as a typical form panel.
func labeledPanel(width, height float64, label string, style canvas.FontStyle, size float64, box string) *Panel {
	return &Panel{
		Width:  width,
		Height: height,
		Draw: func(ctx *vector.Context, p *Panel) error {
			family, err := fonts.Family()
			if err != nil {
				return err
			}
			fg := p.Foreground()

			face := family.Face(size, fg, style, canvas.FontNormal)
			baseline := p.Height - widgetInset - face.Metrics().CapHeight
			if err := drawLabel(ctx, face, fg, widgetInset, baseline, label); err != nil {
				return err
			}

			boxFace := family.Face(checkboxLabel, fg, canvas.FontRegular, canvas.FontNormal)
			return drawCheckbox(ctx, boxFace, fg, widgetInset, widgetInset, box, false)
		},
	}
}
