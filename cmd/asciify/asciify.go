package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("asciify", flag.ContinueOnError)
	inputFile := fs.String("input", "",
		"Path to the input image file (or pass it as the first argument)")
	outputFile := fs.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	targetWidth := fs.Int("width", img2ascii.DefaultWidth,
		"Number of characters per line")
	targetHeight := fs.Int("height", img2ascii.DefaultHeight,
		"Number of lines")
	useColor := fs.Bool("color", false,
		"Wrap each character in a 24-bit ANSI foreground color")
	interpName := fs.String("interp", "nearest",
		"Resampling method: nearest, approx-bilinear, bilinear, or catmull-rom")
	verbose := fs.Bool("v", false,
		"Print progress and timing to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *inputFile == "" && fs.NArg() > 0 {
		*inputFile = fs.Arg(0)
	}
	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide the image using the -input flag")
		fs.PrintDefaults()
		return 2
	}

	interp, err := imageutil.ParseInterpolation(*interpName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	renderer := img2ascii.NewRenderer(
		img2ascii.WithTargetSize(*targetWidth, *targetHeight),
		img2ascii.WithColor(*useColor),
		img2ascii.WithInterpolation(interp),
	)

	start := time.Now()
	lines, err := renderer.RenderFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing image: %v\n", err)
		return 1
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Rendered %s at %dx%d (%s, color=%t) in %v\n",
			*inputFile, renderer.TargetWidth, renderer.TargetHeight,
			renderer.Interpolation, renderer.Color, time.Since(start))
	}

	if *outputFile == "" {
		if err := img2ascii.WriteLines(os.Stdout, lines); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return 1
		}
		return 0
	}

	f, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
		return 1
	}
	if err := img2ascii.WriteLines(f, lines); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
		return 1
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to file: %v\n", err)
		return 1
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Output written to %s\n", *outputFile)
	}
	return 0
}
