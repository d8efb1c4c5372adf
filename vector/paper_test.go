package vector

import (
	"math"
	"testing"
)

func TestParsePageSize(t *testing.T) {
	cases := []struct {
		spec   string
		width  float64
		height float64
	}{
		{"", LetterWidth, LetterHeight},
		{"letter", LetterWidth, LetterHeight},
		{"Letter", LetterWidth, LetterHeight},
		{"letter-landscape", LetterHeight, LetterWidth},
		{"a4", A4Width, A4Height},
		{"a4-landscape", A4Height, A4Width},
		{"612x792", 612, 792},
		{"612x792pt", 612, 792},
		{"8.5x11in", 612, 792},
		{"210x297mm", 210 * MmToPt, 297 * MmToPt},
		{"21x29.7cm", 210 * MmToPt, 297 * MmToPt},
	}
	for _, tc := range cases {
		w, h, err := ParsePageSize(tc.spec)
		if err != nil {
			t.Fatalf("ParsePageSize(%q): %v", tc.spec, err)
		}
		if math.Abs(w-tc.width) > 1e-6 || math.Abs(h-tc.height) > 1e-6 {
			t.Fatalf("ParsePageSize(%q) = %g×%g, want %g×%g", tc.spec, w, h, tc.width, tc.height)
		}
	}
}

func TestParsePageSizeA4ApproximatesMetric(t *testing.T) {
	w, h, err := ParsePageSize("210x297mm")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w-A4Width) > 0.5 || math.Abs(h-A4Height) > 0.5 {
		t.Fatalf("210x297mm = %g×%g pt, want ≈ %g×%g", w, h, A4Width, A4Height)
	}
}

func TestParsePageSizeErrors(t *testing.T) {
	for _, spec := range []string{
		"bogus",
		"bogus-landscape",
		"612",
		"x792",
		"612x",
		"-10x100",
		"0x100",
		"axb",
	} {
		if _, _, err := ParsePageSize(spec); err == nil {
			t.Fatalf("ParsePageSize(%q): expected error", spec)
		}
	}
}
