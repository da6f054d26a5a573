package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"strconv"

	"github.com/kevin-cantwell/asciimotion"
)

// Encoder writes raw RGBA frames into an H.264 video.
type Encoder struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	w      *bufio.Writer
	stderr bytes.Buffer
	size   image.Rectangle
	frame  *image.RGBA
}

// Create starts an encoder for width x height frames at fps. Odd sizes are
// padded by one pixel since yuv420p needs even dimensions.
func Create(ctx context.Context, path string, width, height int, fps float64) (*Encoder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ffmpeg: invalid frame size %dx%d", width, height)
	}
	args := []string{
		"-y", "-nostdin", "-v", "error",
		"-f", "rawvideo", "-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.FormatFloat(fps, 'f', -1, 64),
		"-i", "-",
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		path,
	}
	e := &Encoder{
		cmd:  exec.CommandContext(ctx, FFmpeg, args...),
		size: image.Rect(0, 0, width, height),
	}
	e.cmd.Stderr = &e.stderr
	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	asciimotion.Logger().Debug("exec", "cmd", FFmpeg, "args", args)
	if err := e.cmd.Start(); err != nil {
		return nil, cmdError(FFmpeg, err, nil)
	}
	e.stdin = stdin
	e.w = bufio.NewWriterSize(stdin, 1<<20)
	return e, nil
}

// Sink adapts Create to the assembler's encoder hook.
func Sink(ctx context.Context, path string, width, height int, fps float64) (asciimotion.FrameSink, error) {
	return Create(ctx, path, width, height, fps)
}

// WriteFrame writes img, which must have the encoder's size.
func (e *Encoder) WriteFrame(img image.Image) error {
	if img.Bounds().Size() != e.size.Size() {
		return fmt.Errorf("ffmpeg: frame is %v, encoder wants %v", img.Bounds().Size(), e.size.Size())
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*e.size.Dx() {
		if e.frame == nil {
			e.frame = image.NewRGBA(e.size)
		}
		draw.Draw(e.frame, e.size, img, img.Bounds().Min, draw.Src)
		rgba = e.frame
	}
	_, err := e.w.Write(rgba.Pix[:4*e.size.Dx()*e.size.Dy()])
	return err
}

// Close flushes the remaining frames and waits for ffmpeg to finish the file.
func (e *Encoder) Close() error {
	ferr := e.w.Flush()
	e.stdin.Close()
	if err := e.cmd.Wait(); err != nil {
		return cmdError(FFmpeg, err, e.stderr.Bytes())
	}
	return ferr
}
