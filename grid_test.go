package img2ascii

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestNewResampledGridDimensions(t *testing.T) {
	t.Parallel()

	sources := []image.Image{
		imageutil.CreateSolidImage(1, 1, imageutil.RGB{R: 9}),
		imageutil.CreateGradientImage(1000, 700),
		imageutil.CreateCheckerboardImage(3, 500, 2),
	}
	for i, src := range sources {
		for _, size := range [][2]int{{DefaultWidth, DefaultHeight}, {4, 2}, {1, 1}} {
			grid, err := NewResampledGrid(src, size[0], size[1], imageutil.InterpolationNearest)
			if err != nil {
				t.Fatalf("source %d at %dx%d: %v", i, size[0], size[1], err)
			}
			if grid.Width != size[0] || grid.Height != size[1] {
				t.Errorf("source %d: got %dx%d, want %dx%d",
					i, grid.Width, grid.Height, size[0], size[1])
			}
			if len(grid.Cells) != size[0]*size[1] {
				t.Errorf("source %d: %d cells, want %d", i, len(grid.Cells), size[0]*size[1])
			}
		}
	}
}

func TestResampledGridAt(t *testing.T) {
	t.Parallel()

	src := imageutil.CreateColorBarsImage(80, 10)
	grid, err := NewResampledGrid(src, len(imageutil.ColorBars), 2, imageutil.InterpolationNearest)
	if err != nil {
		t.Fatalf("NewResampledGrid failed: %v", err)
	}
	for row := 0; row < grid.Height; row++ {
		for col, bar := range imageutil.ColorBars {
			want := RGB{R: int(bar.R), G: int(bar.G), B: int(bar.B)}
			if got := grid.At(col, row); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

func TestResampledGridOwnsMemory(t *testing.T) {
	t.Parallel()

	src := imageutil.CreateSolidImage(4, 2, imageutil.RGB{R: 10, G: 20, B: 30})
	grid, err := NewResampledGrid(src, 4, 2, imageutil.InterpolationNearest)
	if err != nil {
		t.Fatalf("NewResampledGrid failed: %v", err)
	}

	src.SetNRGBA(0, 0, color.NRGBA{A: 255})
	if got := grid.At(0, 0); got != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("grid changed with its source: %v", got)
	}
}

func TestNewResampledGridErrors(t *testing.T) {
	t.Parallel()

	src := imageutil.CreateSolidImage(4, 4, imageutil.RGB{})
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-3, 5}, {math.MaxInt32, math.MaxInt32}} {
		grid, err := NewResampledGrid(src, size[0], size[1], imageutil.InterpolationNearest)
		var cfgErr *InvalidConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("size %v: expected InvalidConfigurationError, got %v", size, err)
		}
		if cfgErr.Width != size[0] || cfgErr.Height != size[1] {
			t.Errorf("size %v: error carries %dx%d", size, cfgErr.Width, cfgErr.Height)
		}
		if grid != nil {
			t.Errorf("size %v: expected no grid", size)
		}
	}

	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	grid, err := NewResampledGrid(empty, 4, 2, imageutil.InterpolationNearest)
	var loadErr *ImageLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("empty image: expected ImageLoadError, got %v", err)
	}
	if !errors.Is(err, imageutil.ErrEmptyImage) {
		t.Errorf("empty image: expected to wrap ErrEmptyImage, got %v", err)
	}
	if grid != nil {
		t.Error("empty image: expected no grid")
	}
}

func TestNewBrightnessGrid(t *testing.T) {
	t.Parallel()

	grid, err := NewResampledGrid(imageutil.CreateColorBarsImage(64, 32), 16, 4,
		imageutil.InterpolationArea)
	if err != nil {
		t.Fatalf("NewResampledGrid failed: %v", err)
	}

	bg := NewBrightnessGrid(grid, DefaultLuminance)
	if bg.Width != grid.Width || bg.Height != grid.Height || len(bg.Values) != len(grid.Cells) {
		t.Fatalf("brightness grid %dx%d (%d values) does not match %dx%d",
			bg.Width, bg.Height, len(bg.Values), grid.Width, grid.Height)
	}
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			c := grid.At(col, row)
			v := bg.At(col, row)
			if v != Brightness(c.R, c.G, c.B) {
				t.Errorf("(%d,%d): brightness %v does not match cell %v", col, row, v, c)
			}
			if v < 0 || v > 1 {
				t.Errorf("(%d,%d): brightness %v outside [0,1]", col, row, v)
			}
		}
	}
}

func TestRGBValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    RGB
		want bool
	}{
		{RGB{0, 0, 0}, true},
		{RGB{255, 255, 255}, true},
		{RGB{256, 0, 0}, false},
		{RGB{0, -1, 0}, false},
		{RGB{0, 0, 1000}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %t, want %t", tt.c, got, tt.want)
		}
	}
}
