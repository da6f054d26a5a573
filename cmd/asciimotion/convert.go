package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/asciimotion"
	"github.com/kevin-cantwell/asciimotion/internal/audio"
	"github.com/kevin-cantwell/asciimotion/internal/ffmpeg"
	"github.com/kevin-cantwell/asciimotion/internal/term"
)

// defaultFPS is assumed for sources that do not report a frame rate.
const defaultFPS = 25

func convert(c *cli.Context, input string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := asciimotion.Logger()

	window := asciimotion.Window{
		Start:    secondsFlag(c, "start"),
		Duration: secondsFlag(c, "duration"),
	}
	caps := asciimotion.Capabilities{
		Encoder:  ffmpeg.Available(),
		Terminal: term.Interactive(),
	}
	caps.Audio = caps.Encoder && !c.Bool("no-audio")

	if c.Bool("audio-only") {
		return extractAudio(ctx, caps, input, window)
	}

	width := c.Int("width")
	if w := asciimotion.ClampWidth(width); w != width {
		log.Warn("width should be between 10 and 300 characters", "requested", width, "using", w)
		width = w
	}
	if c.Int("skip") < 1 {
		return asciimotion.ErrBadStride
	}

	profiles := asciimotion.BuiltinProfiles()
	if path := c.String("profiles"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = profiles.Load(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	profile, err := profiles.Lookup(c.String("quality"))
	if err != nil {
		return err
	}

	bg, ok := asciimotion.Backgrounds[c.String("bg-color")]
	if !ok {
		return fmt.Errorf("unknown background color %q", c.String("bg-color"))
	}

	var font *asciimotion.Font
	if c.Bool("glyphs") && c.String("save-video") != "" {
		font, err = asciimotion.LoadFont(profile.FontSize, c.String("font"))
		if err != nil {
			log.Warn("drawing solid blocks instead of glyphs", "err", err)
		}
		caps.Font = font != nil
	}

	src, fps, err := openSource(ctx, caps, input, window)
	if err != nil {
		return err
	}
	defer src.Close()

	renderer := asciimotion.NewRenderer(
		asciimotion.WithWidth(width),
		asciimotion.WithProfile(profile),
		asciimotion.WithColor(c.Bool("color")),
		asciimotion.WithEnhance(!c.Bool("no-enhance")),
	)
	asm, err := asciimotion.NewAssembler(asciimotion.Config{
		Renderer:   renderer,
		Background: bg,
		Font:       font,
		Stride:     c.Int("skip"),
		Caps:       caps,
		Encoder:    ffmpeg.Sink,
		Audio:      ffmpeg.Audio{},
		FitAudio:   audio.Fit,
	})
	if err != nil {
		return err
	}

	log.Info("converting", "video", input, "width", width, "quality", profile.Name, "color", c.Bool("color"), "skip", c.Int("skip"))
	frames, err := asm.Collect(ctx, src)
	if err != nil {
		return err
	}
	fps /= float64(c.Int("skip"))
	log.Info("conversion done", "frames", len(frames), "fps", fps)

	if path := c.String("output"); path != "" {
		if err := saveLog(path, input, width, profile.Name, c.Bool("color"), frames); err != nil {
			return err
		}
		log.Info("text saved", "path", path)
	}

	if path := c.String("save-video"); path != "" {
		report, err := asm.Export(ctx, frames, asciimotion.ExportOptions{
			Output:    path,
			FPS:       fps,
			Source:    input,
			Window:    window,
			KeepAudio: !c.Bool("no-audio") && !asciimotion.IsStill(input),
		})
		if err != nil {
			return err
		}
		status := "without audio"
		if report.Audio {
			status = "with audio"
		}
		fmt.Printf("ASCII video saved to: %s (%s)\n", report.Output, status)
	}

	if c.Bool("no-play") {
		return nil
	}
	if !caps.Terminal {
		log.Warn("not a terminal, skipping playback")
		return nil
	}
	if cols, _, err := term.Size(); err == nil && cols > 0 && cols < width {
		log.Warn("frames are wider than the terminal", "width", width, "columns", cols)
	}
	err = asm.Play(ctx, frames, display(c.String("display")), fps)
	if errors.Is(err, context.Canceled) {
		fmt.Println("Playback stopped by user")
		return nil
	}
	return err
}

// openSource picks a decoder for input and reports its frame rate. Still
// images and gifs are decoded in process; anything else goes to ffmpeg.
func openSource(ctx context.Context, caps asciimotion.Capabilities, input string, window asciimotion.Window) (asciimotion.FrameSource, float64, error) {
	switch {
	case asciimotion.IsStill(input):
		if window != (asciimotion.Window{}) {
			asciimotion.Logger().Warn("still images ignore --start and --duration")
		}
		src, err := asciimotion.OpenStill(input)
		return src, 1, err
	case strings.EqualFold(filepath.Ext(input), ".gif"):
		src, err := asciimotion.OpenGIF(input)
		if err != nil {
			return nil, 0, err
		}
		if err := src.Trim(window); err != nil {
			return nil, 0, err
		}
		return src, src.FPS(), nil
	}

	if !caps.Encoder {
		return nil, 0, errors.New("ffmpeg is required to decode videos")
	}
	info, err := ffmpeg.Probe(ctx, input)
	if err != nil {
		return nil, 0, err
	}
	fps := info.FPS
	if fps <= 0 {
		asciimotion.Logger().Warn("source has no frame rate", "assuming", defaultFPS)
		fps = defaultFPS
	}
	asciimotion.Logger().Info("video", "size", fmt.Sprintf("%dx%d", info.Width, info.Height), "fps", fps, "frames", info.Frames, "duration", info.Duration, "audio", info.HasAudio)
	src, err := ffmpeg.Open(ctx, input, window)
	if err != nil {
		return nil, 0, err
	}
	return src, fps, nil
}

func extractAudio(ctx context.Context, caps asciimotion.Capabilities, input string, window asciimotion.Window) error {
	if !caps.Encoder {
		return errors.New("ffmpeg is required to extract audio")
	}
	out := strings.TrimSuffix(input, filepath.Ext(input)) + "_audio.wav"
	if err := (ffmpeg.Audio{}).Extract(ctx, input, window, out); err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	fmt.Printf("Audio extracted to: %s\n", out)
	return nil
}

func saveLog(path, input string, width int, quality string, colored bool, frames []*asciimotion.TextFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	h := asciimotion.LogHeader{Video: input, Width: width, Quality: quality, Color: colored}
	if err := asciimotion.WriteLog(f, h, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func display(mode string) asciimotion.Display {
	if mode == "ansi" {
		return &asciimotion.Xterm{Writer: os.Stdout}
	}
	return asciimotion.NewScreen(nil)
}

func secondsFlag(c *cli.Context, name string) time.Duration {
	return time.Duration(c.Float64(name) * float64(time.Second))
}
