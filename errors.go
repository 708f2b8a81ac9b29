package img2ascii

import (
	"fmt"

	"github.com/wbrown/img2ascii/imageutil"
)

// ImageLoadError reports that a source image could not be opened, could
// not be decoded, or had no pixels. No output is produced when it occurs.
type ImageLoadError struct {
	Path string // empty when the image did not come from a file
	Err  error
}

func (e *ImageLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot load image: %v", e.Err)
	}
	return fmt.Sprintf("cannot load image %q: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// InvalidConfigurationError reports a target grid size that is not positive
// or too large to allocate. It is returned before any image is loaded or
// resampled.
type InvalidConfigurationError struct {
	Width, Height int
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid target size %dx%d: width and height must be positive and at most %d cells in total",
		e.Width, e.Height, imageutil.MaxCells)
}
