package asciimotion

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

var (
	// ErrNoFrames is returned when no frame survives sampling.
	ErrNoFrames = errors.New("asciimotion: no frames to process")
	// ErrNoFramesWritten is returned when every frame failed to encode.
	ErrNoFramesWritten = errors.New("asciimotion: no frames were written")
	// ErrNoEncoder is returned by Export when no video encoder is available.
	ErrNoEncoder = errors.New("asciimotion: video encoder unavailable")
	// ErrNoTerminal is returned by Play when there is no terminal to play to.
	ErrNoTerminal = errors.New("asciimotion: no terminal for playback")
	// ErrBadStride is returned for sampling strides below one.
	ErrBadStride = errors.New("asciimotion: sampling stride must be at least 1")
)

// FrameSource yields decoded frames in source order and io.EOF after the last.
type FrameSource interface {
	Next() (image.Image, error)
	Close() error
}

// FrameSink consumes equally sized frames and produces a video on Close.
type FrameSink interface {
	WriteFrame(img image.Image) error
	Close() error
}

// SinkFactory opens a video encoder writing to path.
type SinkFactory func(ctx context.Context, path string, width, height int, fps float64) (FrameSink, error)

// Window is a time range of the source. A zero Duration runs to the end.
type Window struct {
	Start    time.Duration
	Duration time.Duration
}

// AudioTrack extracts a source's audio and muxes audio into a silent video.
type AudioTrack interface {
	Extract(ctx context.Context, src string, w Window, dst string) error
	Mux(ctx context.Context, video, audio, out string) error
}

// AudioFitter rewrites the audio at src as dst, exactly d long.
type AudioFitter func(src, dst string, d time.Duration) error

// Capabilities describes which optional collaborators a run may use.
type Capabilities struct {
	Encoder  bool // a video encoder can be started
	Audio    bool // audio can be extracted and muxed
	Font     bool // a font is loaded for glyph cells
	Terminal bool // frames can be displayed interactively
}

// Config wires an Assembler.
type Config struct {
	Renderer   *Renderer
	Compositor *Compositor // built from Renderer, Background and Font when nil
	Background color.Color
	Font       *Font // used only when Caps.Font is set
	Stride     int
	Caps       Capabilities
	Encoder    SinkFactory
	Audio      AudioTrack
	FitAudio   AudioFitter
}

// Assembler drives a conversion: it samples source frames, renders them and
// hands the results to the log writer, the video encoder or a display. Frames
// are handled one at a time in source order.
type Assembler struct {
	renderer   *Renderer
	compositor *Compositor
	stride     int
	caps       Capabilities
	encoder    SinkFactory
	audio      AudioTrack
	fitAudio   AudioFitter
}

// NewAssembler validates cfg and returns an Assembler. A nil Renderer gets the
// defaults.
func NewAssembler(cfg Config) (*Assembler, error) {
	if cfg.Stride == 0 {
		cfg.Stride = 1
	}
	if cfg.Stride < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStride, cfg.Stride)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = NewRenderer()
	}
	if cfg.Compositor == nil {
		p := cfg.Renderer.Profile()
		opts := []CompositorOpt{WithCellSize(p.CellWidth, p.CellHeight)}
		if cfg.Background != nil {
			opts = append(opts, WithBackground(cfg.Background))
		}
		if cfg.Caps.Font && cfg.Font != nil {
			opts = append(opts, WithFont(cfg.Font))
		}
		cfg.Compositor = NewCompositor(p.Glyphs(), opts...)
	}
	return &Assembler{
		renderer:   cfg.Renderer,
		compositor: cfg.Compositor,
		stride:     cfg.Stride,
		caps:       cfg.Caps,
		encoder:    cfg.Encoder,
		audio:      cfg.Audio,
		fitAudio:   cfg.FitAudio,
	}, nil
}

// Collect reads src to the end and renders every stride-th frame, counting
// from zero: a stride of 3 keeps frames 0, 3, 6 and so on. A decode error
// after some frames were kept ends the stream early; one before any frame is
// kept is returned.
func (a *Assembler) Collect(ctx context.Context, src FrameSource) ([]*TextFrame, error) {
	var frames []*TextFrame
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		img, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(frames) == 0 {
				return nil, fmt.Errorf("decode frame %d: %w", i, err)
			}
			logger().Warn("decoding stopped early", "frame", i, "err", err)
			break
		}
		if i%a.stride != 0 {
			continue
		}
		frames = append(frames, a.renderer.Render(img))
		if len(frames)%10 == 0 {
			logger().Info("rendered frames", "kept", len(frames), "read", i+1)
		}
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	logger().Debug("collect done", "frames", len(frames), "stride", a.stride)
	return frames, nil
}

// ExportOptions describes one video export.
type ExportOptions struct {
	Output    string
	FPS       float64
	Source    string // source video, for audio
	Window    Window // source range the frames came from
	KeepAudio bool
}

// Report summarizes an export.
type Report struct {
	Frames   int
	Written  int
	Failed   int
	Audio    bool
	Output   string
	Degraded []string
}

func (r *Report) degrade(msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	r.Degraded = append(r.Degraded, msg)
	logger().Warn(msg)
}

// Export composites frames and encodes them to opts.Output, adding the
// source's audio when asked and possible. The first composited frame fixes
// the video size; later frames of another size are scaled to it. Frames that
// fail are skipped and counted. Audio problems leave a silent video and a
// note in Report.Degraded. Temporary files are removed on every path.
func (a *Assembler) Export(ctx context.Context, frames []*TextFrame, opts ExportOptions) (*Report, error) {
	report := &Report{Frames: len(frames), Output: opts.Output}
	if len(frames) == 0 {
		return report, ErrNoFrames
	}
	if !a.caps.Encoder || a.encoder == nil {
		return report, ErrNoEncoder
	}
	if opts.FPS <= 0 {
		return report, fmt.Errorf("asciimotion: invalid frame rate %g", opts.FPS)
	}

	tmp, err := os.MkdirTemp(filepath.Dir(opts.Output), ".asciimotion-")
	if err != nil {
		return report, err
	}
	defer os.RemoveAll(tmp)

	ext := filepath.Ext(opts.Output)
	if ext == "" {
		ext = ".mp4"
	}
	silent := filepath.Join(tmp, "video"+ext)
	if err := a.encode(ctx, frames, silent, opts.FPS, report); err != nil {
		return report, err
	}

	final := silent
	if opts.KeepAudio {
		length := time.Duration(float64(report.Written) / opts.FPS * float64(time.Second))
		muxed := filepath.Join(tmp, "muxed"+ext)
		if err := a.addAudio(ctx, tmp, silent, muxed, opts, length); err != nil {
			report.degrade("saving video without audio", err)
		} else {
			final = muxed
			report.Audio = true
		}
	}

	if err := replaceFile(final, opts.Output); err != nil {
		return report, err
	}
	logger().Info("video saved", "path", opts.Output, "frames", report.Written, "failed", report.Failed, "audio", report.Audio)
	return report, nil
}

func (a *Assembler) encode(ctx context.Context, frames []*TextFrame, path string, fps float64, report *Report) (err error) {
	var (
		sink FrameSink
		size image.Rectangle
	)
	defer func() {
		if sink == nil {
			return
		}
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("finish video: %w", cerr)
		}
	}()

	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := a.compositor.Composite(f)
		if err != nil {
			report.Failed++
			logger().Warn("skipping frame", "frame", i+1, "err", err)
			continue
		}
		if sink == nil {
			size = img.Bounds()
			sink, err = a.encoder(ctx, path, size.Dx(), size.Dy(), fps)
			if err != nil {
				sink = nil
				return fmt.Errorf("%w: %v", ErrNoEncoder, err)
			}
			logger().Info("encoding video", "width", size.Dx(), "height", size.Dy(), "fps", fps)
		}
		if err := sink.WriteFrame(FitFrame(img, size)); err != nil {
			report.Failed++
			logger().Warn("failed to write frame", "frame", i+1, "err", err)
			continue
		}
		report.Written++
		if (i+1)%10 == 0 {
			logger().Info("encoding progress", "done", i+1, "total", len(frames), "written", report.Written)
		}
	}
	if report.Written == 0 {
		return ErrNoFramesWritten
	}
	return nil
}

func (a *Assembler) addAudio(ctx context.Context, tmp, video, out string, opts ExportOptions, length time.Duration) error {
	if !a.caps.Audio || a.audio == nil {
		return errors.New("audio support unavailable")
	}
	if opts.Source == "" {
		return errors.New("no source video for audio")
	}
	track := filepath.Join(tmp, "audio.wav")
	if err := a.audio.Extract(ctx, opts.Source, opts.Window, track); err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	if a.fitAudio != nil {
		fitted := filepath.Join(tmp, "fitted.wav")
		if err := a.fitAudio(track, fitted, length); err != nil {
			logger().Debug("audio left untrimmed", "err", err)
		} else {
			track = fitted
		}
	}
	if err := a.audio.Mux(ctx, video, track, out); err != nil {
		return fmt.Errorf("combine video and audio: %w", err)
	}
	return nil
}

// FitFrame returns img at exactly size, scaling with nearest neighbor so
// cell edges stay sharp. Images already at size are returned unchanged.
func FitFrame(img image.Image, size image.Rectangle) image.Image {
	if img.Bounds().Size() == size.Size() {
		return img
	}
	return imaging.Resize(img, size.Dx(), size.Dy(), imaging.NearestNeighbor)
}

func replaceFile(from, to string) error {
	if err := os.Remove(to); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(from, to)
}

// Display shows text frames one after another. Start receives a function the
// display calls when the user asks to stop.
type Display interface {
	Start(quit func()) error
	Show(f *TextFrame, status string) error
	Stop() error
}

// Play shows frames on d at fps. It returns ctx.Err() when interrupted, after
// the display has been restored.
func (a *Assembler) Play(ctx context.Context, frames []*TextFrame, d Display, fps float64) (err error) {
	if !a.caps.Terminal {
		return ErrNoTerminal
	}
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if fps <= 0 {
		fps = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := d.Start(cancel); err != nil {
		return err
	}
	defer func() {
		if serr := d.Stop(); serr != nil && err == nil {
			err = serr
		}
	}()

	interval := time.Duration(float64(time.Second) / fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i, f := range frames {
		status := fmt.Sprintf("Frame %d/%d | FPS: %.1f", i+1, len(frames), fps)
		if err := d.Show(f, status); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
