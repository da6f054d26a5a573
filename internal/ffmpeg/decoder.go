package ffmpeg

import (
	"bytes"
	"context"
	"image"
	"io"
	"os/exec"

	"github.com/kevin-cantwell/asciimotion"
)

// Decoder streams the frames of a video file in order.
type Decoder struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr bytes.Buffer
	frames *MJPEGReader
	waited bool
	err    error
}

// Open starts decoding the window w of path. Frames are transcoded to MJPEG
// and read back through a pipe, so any format ffmpeg reads is accepted.
func Open(ctx context.Context, path string, w asciimotion.Window) (*Decoder, error) {
	args := []string{"-nostdin", "-v", "error"}
	args = append(args, windowArgs(w)...)
	args = append(args, "-i", path, "-an", "-f", "image2pipe", "-c:v", "mjpeg", "-q:v", "2", "-")

	d := &Decoder{cmd: exec.CommandContext(ctx, FFmpeg, args...)}
	d.cmd.Stderr = &d.stderr
	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	asciimotion.Logger().Debug("exec", "cmd", FFmpeg, "args", args)
	if err := d.cmd.Start(); err != nil {
		return nil, cmdError(FFmpeg, err, nil)
	}
	d.stdout = stdout
	d.frames = NewMJPEGReader(stdout)
	return d, nil
}

// Next returns the next frame. After the last frame it returns io.EOF, or
// the decoder's failure if ffmpeg exited with an error.
func (d *Decoder) Next() (image.Image, error) {
	if d.err != nil {
		return nil, d.err
	}
	img, err := d.frames.Next()
	if err == nil {
		return img, nil
	}
	if werr := d.wait(); werr != nil {
		d.err = werr
		return nil, werr
	}
	d.err = err
	return nil, err
}

// Close stops ffmpeg if it is still running.
func (d *Decoder) Close() error {
	if d.waited {
		return nil
	}
	d.stdout.Close()
	if d.cmd.Process != nil {
		d.cmd.Process.Kill()
	}
	d.cmd.Wait()
	d.waited = true
	return nil
}

func (d *Decoder) wait() error {
	if d.waited {
		return nil
	}
	d.waited = true
	// Drain so ffmpeg is not blocked on a full pipe.
	io.Copy(io.Discard, d.stdout)
	if err := d.cmd.Wait(); err != nil {
		return cmdError(FFmpeg, err, d.stderr.Bytes())
	}
	return nil
}
