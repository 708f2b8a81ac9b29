package imageutil

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

var (
	// ErrEmptyImage is returned when the source has zero width or height.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrInvalidSize is returned when a resample target is not positive in
	// both dimensions or has more than MaxCells pixels.
	ErrInvalidSize = errors.New("target size out of range")
)

// MaxCells bounds the pixel count of a resample target.
const MaxCells = 1 << 26

// ValidSize reports whether width x height is a usable resample target.
func ValidSize(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxCells/height
}

// Interpolation specifies the interpolation method for resampling.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor sampling. This is the
	// default: it is fastest and reproduces source colors exactly.
	InterpolationNearest Interpolation = iota

	// InterpolationApproxLinear uses x/image's fast approximate bilinear
	// interpolation.
	InterpolationApproxLinear

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses the Catmull-Rom cubic kernel, the sharpest of
	// the filters for large downscales.
	InterpolationArea
)

var interpolationNames = map[Interpolation]string{
	InterpolationNearest:      "nearest",
	InterpolationApproxLinear: "approx-bilinear",
	InterpolationLinear:       "bilinear",
	InterpolationArea:         "catmull-rom",
}

// String returns the name accepted by ParseInterpolation.
func (i Interpolation) String() string {
	if name, ok := interpolationNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation maps a name such as "nearest" or "bilinear" to its
// Interpolation. Matching is case-insensitive.
func ParseInterpolation(name string) (Interpolation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for interp, n := range interpolationNames {
		if n == name {
			return interp, nil
		}
	}
	switch name {
	case "area":
		return InterpolationArea, nil
	case "linear":
		return InterpolationLinear, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q, options are nearest,"+
		" approx-bilinear, bilinear, or catmull-rom", name)
}

func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationApproxLinear:
		return draw.ApproxBiLinear
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationArea:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Resample stretches the whole of src onto a newly allocated width x height
// image. Aspect ratio is not preserved. The result never shares memory
// with src.
func Resample(src image.Image, width, height int, interp Interpolation) (*image.NRGBA, error) {
	if !ValidSize(width, height) {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if IsEmpty(src) {
		return nil, ErrEmptyImage
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	sb := src.Bounds()

	// Same size needs no filtering, so copy exactly.
	if sb.Dx() == width && sb.Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
		return dst, nil
	}

	interp.scaler().Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}
