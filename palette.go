package img2ascii

import "math"

// PaletteSize is the number of brightness buckets and glyphs.
const PaletteSize = 10

// Palette is an ordered set of glyphs from darkest to brightest.
type Palette [PaletteSize]rune

// DefaultPalette is the glyph ramp used by every Renderer.
var DefaultPalette = Palette{' ', '.', ':', '-', '=', '+', '*', '%', '#', '@'}

// GlyphIndex quantizes a brightness in [0.0, 1.0] into one of the
// PaletteSize buckets: floor(v*10), with 1.0 folded into the top bucket.
// Values outside the interval, and NaN, are clamped to the nearest end.
func GlyphIndex(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	idx := int(math.Floor(v * PaletteSize))
	if idx >= PaletteSize {
		return PaletteSize - 1
	}
	return idx
}

// Glyph returns the glyph for a brightness value.
func (p Palette) Glyph(v float64) rune {
	return p[GlyphIndex(v)]
}

// String returns the glyphs in order.
func (p Palette) String() string {
	return string(p[:])
}
