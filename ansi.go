package img2ascii

import (
	"strconv"
	"strings"
)

const (
	ESC = "\u001b"

	// Reset clears every attribute, ending a colored glyph.
	Reset = ESC + "[0m"
)

// white replaces colors that cannot be expressed as a 24-bit directive.
var white = RGB{R: 255, G: 255, B: 255}

// ForegroundCode returns the 24-bit foreground color directive
// ESC[38;2;R;G;Bm for c. A color with any channel outside [0, 255] is
// emitted as white.
func ForegroundCode(c RGB) string {
	var sb strings.Builder
	writeForeground(&sb, c)
	return sb.String()
}

func writeForeground(sb *strings.Builder, c RGB) {
	if !c.Valid() {
		c = white
	}
	sb.WriteString(ESC)
	sb.WriteString("[38;2;")
	sb.WriteString(strconv.Itoa(c.R))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(c.G))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(c.B))
	sb.WriteByte('m')
}

// writeColorGlyph writes one directive, glyph, reset triple.
func writeColorGlyph(sb *strings.Builder, c RGB, glyph rune) {
	writeForeground(sb, c)
	sb.WriteRune(glyph)
	sb.WriteString(Reset)
}
