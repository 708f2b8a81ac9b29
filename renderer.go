package img2ascii

import (
	"errors"
	"image"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// Renderer converts images to lines of text. It only holds configuration,
// so a single Renderer may be shared; every call builds and discards its
// own grids, and identical input always gives identical output.
type Renderer struct {
	// Configuration options
	TargetWidth   int
	TargetHeight  int
	Color         bool
	Interpolation imageutil.Interpolation

	palette   Palette
	luminance Luminance
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: TargetWidth=200, TargetHeight=100, Color=false,
// Interpolation=InterpolationNearest.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		TargetWidth:   DefaultWidth,
		TargetHeight:  DefaultHeight,
		Interpolation: imageutil.InterpolationNearest,
		palette:       DefaultPalette,
		luminance:     DefaultLuminance,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithTargetSize sets the output grid size in characters.
func WithTargetSize(width, height int) RendererOption {
	return func(r *Renderer) {
		r.TargetWidth = width
		r.TargetHeight = height
	}
}

// WithColor selects color output instead of plain monochrome text.
func WithColor(color bool) RendererOption {
	return func(r *Renderer) {
		r.Color = color
	}
}

// WithInterpolation sets how the source image is resampled onto the grid.
func WithInterpolation(interp imageutil.Interpolation) RendererOption {
	return func(r *Renderer) {
		r.Interpolation = interp
	}
}

// Palette returns the glyph ramp used by r.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// Validate checks the configuration, returning an
// *InvalidConfigurationError if the target size is not positive or has
// more than imageutil.MaxCells cells.
func (r *Renderer) Validate() error {
	if !imageutil.ValidSize(r.TargetWidth, r.TargetHeight) {
		return &InvalidConfigurationError{Width: r.TargetWidth, Height: r.TargetHeight}
	}
	return nil
}

// RenderFile loads the image at path and renders it. If the file cannot be
// opened or decoded the error is an *ImageLoadError and no lines are
// returned.
func (r *Renderer) RenderFile(path string) ([]string, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	img, _, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}

	lines, err := r.Render(img)
	var loadErr *ImageLoadError
	if errors.As(err, &loadErr) && loadErr.Path == "" {
		loadErr.Path = path
	}
	return lines, err
}

// Render resamples img to the target size and encodes it as monochrome or
// color lines, one string per row without line terminators.
func (r *Renderer) Render(img image.Image) ([]string, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewResampledGrid(img, r.TargetWidth, r.TargetHeight, r.Interpolation)
	if err != nil {
		return nil, err
	}

	if r.Color {
		return r.RenderColor(grid), nil
	}
	return r.RenderMonochrome(NewBrightnessGrid(grid, r.luminance)), nil
}

// RenderMonochrome maps every brightness to its glyph, top row first and
// left to right within a row. Lines contain glyphs only.
func (r *Renderer) RenderMonochrome(grid *BrightnessGrid) []string {
	lines := make([]string, grid.Height)
	row := make([]rune, grid.Width)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			row[x] = r.palette.Glyph(grid.At(x, y))
		}
		lines[y] = string(row)
	}
	return lines
}

// RenderColor emits each cell as ESC[38;2;R;G;Bm, the glyph for the
// cell's brightness, then ESC[0m. The directive carries the cell's own
// color; a cell with a channel outside [0, 255] is drawn white.
func (r *Renderer) RenderColor(grid *ResampledGrid) []string {
	lines := make([]string, grid.Height)
	var sb strings.Builder
	for y := 0; y < grid.Height; y++ {
		sb.Reset()
		// "\x1b[38;2;255;255;255m" + glyph + "\x1b[0m"
		sb.Grow(grid.Width * 24)
		for x := 0; x < grid.Width; x++ {
			c := grid.At(x, y)
			glyph := r.palette.Glyph(r.luminance.Brightness(c.R, c.G, c.B))
			writeColorGlyph(&sb, c, glyph)
		}
		lines[y] = sb.String()
	}
	return lines
}
