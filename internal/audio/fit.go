// Package audio fits extracted soundtracks to the length of the rendered
// video.
package audio

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ErrEmptyDuration is returned by Fit for non-positive durations.
var ErrEmptyDuration = errors.New("audio: duration must be positive")

// Fit rewrites the wav at src as dst, exactly d long. Longer audio is cut,
// shorter audio is padded with silence.
func Fit(src, dst string, d time.Duration) error {
	if d <= 0 {
		return ErrEmptyDuration
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	streamer, format, err := wav.Decode(in)
	if err != nil {
		return fmt.Errorf("audio: decode %s: %w", src, err)
	}
	defer streamer.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	n := format.SampleRate.N(d)
	fitted := beep.Take(n, beep.Seq(streamer, beep.Silence(-1)))
	if err := wav.Encode(out, fitted, format); err != nil {
		out.Close()
		return fmt.Errorf("audio: encode %s: %w", dst, err)
	}
	if err := streamer.Err(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Duration returns the length of the wav at path.
func Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}
