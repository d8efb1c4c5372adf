package vector

import "image/color"

// Grayscale converts a color to its gray equivalent using the Rec. 601
// luma weights, preserving alpha.
func Grayscale(col color.Color) color.Color {
	r, g, b, a := col.RGBA()
	y := (299*r + 587*g + 114*b) / 1000
	return color.RGBA64{R: uint16(y), G: uint16(y), B: uint16(y), A: uint16(a)}
}

// ForegroundFor returns a text/line color that contrasts with the given
// background: black on light backgrounds, white on dark ones.
func ForegroundFor(background color.Color) color.Color {
	r, g, b, _ := background.RGBA()
	y := (299*r + 587*g + 114*b) / 1000
	if y >= 0x8000 {
		return color.Black
	}
	return color.White
}
