package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrNoVideo is returned by Probe for files without a video stream.
var ErrNoVideo = errors.New("ffmpeg: no video stream")

// StreamInfo describes a media file.
type StreamInfo struct {
	Width    int
	Height   int
	FPS      float64
	Frames   int // zero when the container does not say
	Duration time.Duration
	HasAudio bool
}

type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
		NbFrames     string `json:"nb_frames"`
		Duration     string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe reads the stream layout of path with ffprobe.
func Probe(ctx context.Context, path string) (StreamInfo, error) {
	out, err := runCmd(ctx, FFprobe, "-v", "error", "-print_format", "json", "-show_streams", "-show_format", path)
	if err != nil {
		return StreamInfo{}, err
	}
	return parseProbe(out)
}

func parseProbe(data []byte) (StreamInfo, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return StreamInfo{}, fmt.Errorf("ffprobe: %w", err)
	}
	var (
		info  StreamInfo
		video bool
	)
	for _, s := range out.Streams {
		switch s.CodecType {
		case "audio":
			info.HasAudio = true
		case "video":
			if video {
				continue
			}
			video = true
			info.Width, info.Height = s.Width, s.Height
			info.FPS = parseRate(s.AvgFrameRate)
			if info.FPS == 0 {
				info.FPS = parseRate(s.RFrameRate)
			}
			info.Frames, _ = strconv.Atoi(s.NbFrames)
			info.Duration = parseSeconds(s.Duration)
		}
	}
	if !video {
		return info, ErrNoVideo
	}
	if info.Duration == 0 {
		info.Duration = parseSeconds(out.Format.Duration)
	}
	if info.Frames == 0 && info.FPS > 0 {
		info.Frames = int(info.Duration.Seconds() * info.FPS)
	}
	return info, nil
}

// parseRate reads ffprobe's "num/den" rates. Unknown rates are "0/0".
func parseRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}

func parseSeconds(s string) time.Duration {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return time.Duration(math.Round(f * float64(time.Second)))
}
