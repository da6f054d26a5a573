package asciimotion

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LogHeader describes the run at the top of a text log.
type LogHeader struct {
	Video   string
	Width   int
	Quality string
	Color   bool
}

// WriteLog writes frames as a plain text log: a header, then every frame
// numbered from 1 and followed by a rule as wide as the frames. Color frames
// keep their escape sequences so the log replays with cat.
func WriteLog(w io.Writer, h LogHeader, frames []*TextFrame) error {
	bw := bufio.NewWriter(w)
	color := "No"
	if h.Color {
		color = "Yes"
	}
	fmt.Fprintf(bw, "Video: %s\n", h.Video)
	fmt.Fprintf(bw, "Dimensions: %d chars wide\n", h.Width)
	fmt.Fprintf(bw, "Quality: %s\n", h.Quality)
	fmt.Fprintf(bw, "Color: %s\n", color)
	fmt.Fprintf(bw, "%s\n\n", strings.Repeat("=", 50))

	rule := strings.Repeat("=", h.Width)
	for i, f := range frames {
		fmt.Fprintf(bw, "Frame %d:\n", i+1)
		if _, err := f.WriteTo(bw); err != nil {
			return err
		}
		fmt.Fprintf(bw, "\n%s\n\n", rule)
	}
	return bw.Flush()
}
