// Package ffmpeg decodes, encodes and muxes media by running the ffmpeg and
// ffprobe binaries.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/kevin-cantwell/asciimotion"
)

// Binaries run by this package. Tests and packagers may point them elsewhere.
var (
	FFmpeg  = "ffmpeg"
	FFprobe = "ffprobe"
)

// Available reports whether the ffmpeg binary can be found.
func Available() bool {
	_, err := exec.LookPath(FFmpeg)
	return err == nil
}

func runCmd(ctx context.Context, name string, args ...string) ([]byte, error) {
	asciimotion.Logger().Debug("exec", "cmd", name, "args", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, cmdError(name, err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

// cmdError keeps the last line ffmpeg wrote to stderr, which is where it
// states what went wrong.
func cmdError(name string, err error, stderr []byte) error {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	if last := strings.TrimSpace(lines[len(lines)-1]); last != "" {
		return fmt.Errorf("%s: %w: %s", name, err, last)
	}
	return fmt.Errorf("%s: %w", name, err)
}

// windowArgs seeks before the input so ffmpeg skips decoding the lead-in.
func windowArgs(w asciimotion.Window) []string {
	var args []string
	if w.Start > 0 {
		args = append(args, "-ss", seconds(w.Start))
	}
	if w.Duration > 0 {
		args = append(args, "-t", seconds(w.Duration))
	}
	return args
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
