// Package img2ascii renders raster images as terminal text. An image is
// stretched onto a fixed grid of character cells, each cell's perceived
// brightness picks a glyph from a ten step ramp, and color mode wraps each
// glyph in a 24-bit ANSI foreground directive carrying the cell's color.
package img2ascii

const (
	// DefaultWidth is the default number of glyphs per line.
	DefaultWidth = 200
	// DefaultHeight is the default number of lines.
	DefaultHeight = 100
)
