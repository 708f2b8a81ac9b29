package img2ascii

// Luminance holds the per-channel weights of the perceptual brightness
// formula, in hundredths. The eye is most sensitive to green and least to
// blue, hence DefaultLuminance.
//
// The weighted sum is computed in integers and divided once, so white is
// exactly 1.0 (float weights give 0.9999999999999999).
type Luminance struct {
	R, G, B int
}

// DefaultLuminance is brightness = (0.21*R + 0.72*G + 0.07*B) / 255.
var DefaultLuminance = Luminance{R: 21, G: 72, B: 7}

// Brightness returns the perceived brightness of an RGB triple with
// channels in [0, 255], as a value in [0.0, 1.0]. Out-of-range channels
// are tolerated; the result is clamped.
func (l Luminance) Brightness(r, g, b int) float64 {
	total := l.R + l.G + l.B
	if total <= 0 {
		return 0
	}
	v := float64(l.R*r+l.G*g+l.B*b) / float64(total*255)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Brightness computes brightness with DefaultLuminance.
func Brightness(r, g, b int) float64 {
	return DefaultLuminance.Brightness(r, g, b)
}
