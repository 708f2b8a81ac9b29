package img2ascii

import (
	"bufio"
	"io"
)

// WriteLines writes each line followed by a newline through a buffered
// writer and flushes it.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
