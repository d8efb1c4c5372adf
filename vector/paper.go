package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Paper sizes in points (1/72 inch). North American Letter is the
// default page everywhere a caller does not specify one.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0

	LegalWidth  = 612.0
	LegalHeight = 1008.0

	TabloidWidth  = 792.0
	TabloidHeight = 1224.0

	A3Width  = 841.89
	A3Height = 1190.55

	A4Width  = 595.28
	A4Height = 841.89

	A5Width  = 419.53
	A5Height = 595.28
)

var paperSizes = map[string][2]float64{
	"letter":  {LetterWidth, LetterHeight},
	"legal":   {LegalWidth, LegalHeight},
	"tabloid": {TabloidWidth, TabloidHeight},
	"a3":      {A3Width, A3Height},
	"a4":      {A4Width, A4Height},
	"a5":      {A5Width, A5Height},
}

// ParsePageSize resolves a page specification to width and height in
// points. Accepted forms:
//
//	letter | legal | tabloid | a3 | a4 | a5
//	<name>-landscape
//	<width>x<height>[pt|mm|cm|in]   e.g. 612x792, 210x297mm
//
// There is no validation of the numeric bounds beyond positivity.
func ParsePageSize(spec string) (width, height float64, err error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return LetterWidth, LetterHeight, nil
	}

	landscape := false
	if name, ok := strings.CutSuffix(s, "-landscape"); ok {
		landscape = true
		s = name
	}
	if size, ok := paperSizes[s]; ok {
		width, height = size[0], size[1]
		if landscape {
			width, height = height, width
		}
		return width, height, nil
	}
	if landscape {
		return 0, 0, fmt.Errorf("unknown paper name %q", s)
	}

	unit := 1.0 // points
	for _, suf := range []struct {
		s  string
		pt float64
	}{{"pt", 1}, {"mm", MmToPt}, {"cm", 10 * MmToPt}, {"in", 72}} {
		if rest, ok := strings.CutSuffix(s, suf.s); ok {
			unit = suf.pt
			s = strings.TrimSpace(rest)
			break
		}
	}

	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid page size %q: want <name> or <width>x<height>[unit]", spec)
	}
	width, err = strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page width in %q: %w", spec, err)
	}
	height, err = strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page height in %q: %w", spec, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("page size %q must be positive", spec)
	}
	return width * unit, height * unit, nil
}
