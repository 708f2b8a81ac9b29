package img2ascii

import (
	"errors"
	"image"

	"github.com/wbrown/img2ascii/imageutil"
)

// RGB is a color sample of a grid cell. Channels are expected in
// [0, 255]; they are ints so that out-of-range data can be represented
// and rejected instead of silently wrapping.
type RGB struct {
	R, G, B int
}

// Valid reports whether every channel lies in [0, 255].
func (c RGB) Valid() bool {
	return c.R >= 0 && c.R <= 255 &&
		c.G >= 0 && c.G <= 255 &&
		c.B >= 0 && c.B <= 255
}

// ResampledGrid is a Width x Height array of color samples in row-major
// order, one per output character cell.
type ResampledGrid struct {
	Width  int
	Height int
	Cells  []RGB
}

// NewResampledGrid stretches src onto a width x height grid. The grid
// owns its own memory. An empty source yields an *ImageLoadError and a
// size that is not positive or exceeds imageutil.MaxCells an
// *InvalidConfigurationError; no grid is returned on error.
func NewResampledGrid(
	src image.Image,
	width, height int,
	interp imageutil.Interpolation,
) (*ResampledGrid, error) {
	if !imageutil.ValidSize(width, height) {
		return nil, &InvalidConfigurationError{Width: width, Height: height}
	}

	img, err := imageutil.Resample(src, width, height, interp)
	if err != nil {
		if errors.Is(err, imageutil.ErrEmptyImage) {
			return nil, &ImageLoadError{Err: err}
		}
		return nil, err
	}

	grid := &ResampledGrid{
		Width:  width,
		Height: height,
		Cells:  make([]RGB, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := imageutil.RGBAt(img, x, y)
			grid.Cells[y*width+x] = RGB{R: int(c.R), G: int(c.G), B: int(c.B)}
		}
	}
	return grid, nil
}

// At returns the sample at column col of row row.
func (g *ResampledGrid) At(col, row int) RGB {
	return g.Cells[row*g.Width+col]
}

// BrightnessGrid holds one brightness in [0.0, 1.0] per cell of a
// ResampledGrid, in the same row-major order.
type BrightnessGrid struct {
	Width  int
	Height int
	Values []float64
}

// NewBrightnessGrid computes the brightness of every cell of grid.
func NewBrightnessGrid(grid *ResampledGrid, lum Luminance) *BrightnessGrid {
	bg := &BrightnessGrid{
		Width:  grid.Width,
		Height: grid.Height,
		Values: make([]float64, len(grid.Cells)),
	}
	for i, c := range grid.Cells {
		bg.Values[i] = lum.Brightness(c.R, c.G, c.B)
	}
	return bg
}

// At returns the brightness at column col of row row.
func (g *BrightnessGrid) At(col, row int) float64 {
	return g.Values[row*g.Width+col]
}
