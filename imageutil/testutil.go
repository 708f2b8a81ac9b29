package imageutil

import (
	"image"
)

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c.ToColor())
		}
	}
	return img
}

// CreateGradientImage creates a horizontal black to white gradient.
func CreateGradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if width > 1 {
				v = uint8(255 * x / (width - 1))
			}
			img.SetNRGBA(x, y, RGB{R: v, G: v, B: v}.ToColor())
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard pattern.
func CreateCheckerboardImage(width, height, squareSize int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := RGB{}
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				c = RGB{R: 255, G: 255, B: 255}
			}
			img.SetNRGBA(x, y, c.ToColor())
		}
	}
	return img
}

// ColorBars are the colors of CreateColorBarsImage, left to right.
var ColorBars = []RGB{
	{255, 255, 255}, // White
	{255, 255, 0},   // Yellow
	{0, 255, 255},   // Cyan
	{0, 255, 0},     // Green
	{255, 0, 255},   // Magenta
	{255, 0, 0},     // Red
	{0, 0, 255},     // Blue
	{0, 0, 0},       // Black
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	barWidth := max(width/len(ColorBars), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(ColorBars)-1)
			img.SetNRGBA(x, y, ColorBars[colorIdx].ToColor())
		}
	}
	return img
}
