package asciimotion

import (
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"time"
)

/*
GIFSource is a FrameSource over an animated gif. Each frame is drawn over the
previous screen so partial frames come out whole, and disposal methods are
respected:

	DisposalPrevious    draw, emit, then restore the screen
	DisposalBackground  draw, emit, then clear the frame's area
	anything else       draw over the screen and leave it
*/
type GIFSource struct {
	giff   *gif.GIF
	screen *image.RGBA
	next   int
	end    int
}

// NewGIFSource decodes every frame of the gif in r.
func NewGIFSource(r io.Reader) (*GIFSource, error) {
	giff, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	bounds := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if bounds.Empty() && len(giff.Image) > 0 {
		bounds = giff.Image[0].Bounds()
	}
	return &GIFSource{giff: giff, screen: image.NewRGBA(bounds), end: len(giff.Image)}, nil
}

// OpenGIF decodes the gif file at path.
func OpenGIF(path string) (*GIFSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewGIFSource(f)
}

// Next returns the screen after the next frame is drawn. The returned image
// is not reused.
func (s *GIFSource) Next() (image.Image, error) {
	if s.next >= s.end {
		return nil, io.EOF
	}
	i := s.next
	s.next++
	frame := s.giff.Image[i]

	var previous *image.RGBA
	if s.disposal(i) == gif.DisposalPrevious {
		previous = cloneRGBA(s.screen)
	}
	// Transparent pixels leave the screen untouched.
	draw.Draw(s.screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
	out := cloneRGBA(s.screen)

	switch s.disposal(i) {
	case gif.DisposalPrevious:
		s.screen = previous
	case gif.DisposalBackground:
		draw.Draw(s.screen, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	return out, nil
}

// Trim limits the source to the frames that start inside w, timed by the
// gif's own delays. Skipped frames are still drawn so the first kept frame
// comes out whole. Call it before the first Next.
func (s *GIFSource) Trim(w Window) error {
	first := -1
	var at time.Duration
	for i := range s.giff.Image {
		if first < 0 && at >= w.Start {
			first = i
		}
		if w.Duration > 0 && at >= w.Start+w.Duration {
			s.end = i
			break
		}
		at += s.delay(i)
	}
	if first < 0 {
		first = s.end
	}
	for s.next < first {
		if _, err := s.Next(); err != nil {
			return err
		}
	}
	return nil
}

// FPS derives a frame rate from the mean frame delay. Gifs without delays
// play at 10 frames per second.
func (s *GIFSource) FPS() float64 {
	var total int
	for _, d := range s.giff.Delay {
		total += d
	}
	if total == 0 || len(s.giff.Delay) == 0 {
		return 10
	}
	return float64(len(s.giff.Delay)) * 100 / float64(total)
}

func (s *GIFSource) Close() error {
	return nil
}

// delay is how long frame i stays up. Missing or zero delays count as a
// tenth of a second, matching FPS.
func (s *GIFSource) delay(i int) time.Duration {
	if i < len(s.giff.Delay) && s.giff.Delay[i] > 0 {
		return time.Duration(s.giff.Delay[i]) * 10 * time.Millisecond
	}
	return 100 * time.Millisecond
}

func (s *GIFSource) disposal(i int) byte {
	if i < len(s.giff.Disposal) {
		return s.giff.Disposal[i]
	}
	return gif.DisposalNone
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
