// Package imageutil provides the pure Go image plumbing used by img2ascii:
// decoding, pixel access and resampling onto a fixed character grid.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA for use with the standard
// library.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// rgbFromColor converts a color.Color to RGB. Channels are read
// non-premultiplied, so alpha is dropped rather than darkening the color.
func rgbFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBAt returns the RGB value of img at (x, y).
func RGBAt(img image.Image, x, y int) RGB {
	if n, ok := img.(*image.NRGBA); ok {
		c := n.NRGBAAt(x, y)
		return RGB{R: c.R, G: c.G, B: c.B}
	}
	return rgbFromColor(img.At(x, y))
}

// IsEmpty reports whether img has no pixels to sample. A typed nil of one
// of the standard library's image types counts as empty.
func IsEmpty(img image.Image) bool {
	switch m := img.(type) {
	case nil:
		return true
	case *image.NRGBA:
		if m == nil {
			return true
		}
	case *image.RGBA:
		if m == nil {
			return true
		}
	case *image.NRGBA64:
		if m == nil {
			return true
		}
	case *image.RGBA64:
		if m == nil {
			return true
		}
	case *image.Gray:
		if m == nil {
			return true
		}
	case *image.Gray16:
		if m == nil {
			return true
		}
	case *image.Paletted:
		if m == nil {
			return true
		}
	case *image.YCbCr:
		if m == nil {
			return true
		}
	case *image.NYCbCrA:
		if m == nil {
			return true
		}
	case *image.CMYK:
		if m == nil {
			return true
		}
	case *image.Alpha:
		if m == nil {
			return true
		}
	}
	return img.Bounds().Empty()
}
