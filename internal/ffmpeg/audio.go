package ffmpeg

import (
	"context"
	"errors"

	"github.com/kevin-cantwell/asciimotion"
)

// ErrNoAudio is returned when the source has no audio stream.
var ErrNoAudio = errors.New("ffmpeg: source has no audio")

// Audio extracts and muxes audio tracks. The zero value is ready to use.
type Audio struct{}

// Extract writes the window w of src's audio to dst as 16-bit stereo wav.
func (Audio) Extract(ctx context.Context, src string, w asciimotion.Window, dst string) error {
	info, err := Probe(ctx, src)
	if err != nil && !errors.Is(err, ErrNoVideo) {
		return err
	}
	if !info.HasAudio {
		return ErrNoAudio
	}
	args := []string{"-y", "-nostdin", "-v", "error"}
	args = append(args, windowArgs(w)...)
	args = append(args, "-i", src, "-vn", "-acodec", "pcm_s16le", "-ar", "44100", "-ac", "2", dst)
	_, err = runCmd(ctx, FFmpeg, args...)
	return err
}

// Mux copies the video stream of video and encodes audio as AAC into out.
// The result ends with the shorter of the two.
func (Audio) Mux(ctx context.Context, video, audio, out string) error {
	_, err := runCmd(ctx, FFmpeg,
		"-y", "-nostdin", "-v", "error",
		"-i", video, "-i", audio,
		"-map", "0:v:0", "-map", "1:a:0",
		"-c:v", "copy", "-c:a", "aac",
		"-shortest",
		out,
	)
	return err
}
