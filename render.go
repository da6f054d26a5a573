package asciimotion

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

const (
	// DefaultWidth is the output width in characters when none is given.
	DefaultWidth = 80
	// MinWidth and MaxWidth bound the output width.
	MinWidth = 10
	MaxWidth = 300
)

// ClampWidth bounds a requested width to [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	return clamp(w, MinWidth, MaxWidth)
}

type RenderOpt func(r *Renderer)

// WithWidth sets the output width in characters. The height follows from the
// source aspect ratio and the profile's aspect correction.
func WithWidth(w int) RenderOpt {
	return func(r *Renderer) {
		r.width = w
	}
}

// WithProfile selects the alphabet, aspect correction and palette.
func WithProfile(p *Profile) RenderOpt {
	return func(r *Renderer) {
		r.profile = p
	}
}

// WithColor turns on per-cell palette codes.
func WithColor(on bool) RenderOpt {
	return func(r *Renderer) {
		r.color = on
	}
}

// WithEnhance toggles the contrast, brightness and blur pass that keeps
// glyph choice from flickering between frames.
func WithEnhance(on bool) RenderOpt {
	return func(r *Renderer) {
		r.enhance = on
	}
}

// Renderer turns pixel frames into TextFrames.
type Renderer struct {
	width   int
	profile *Profile
	color   bool
	enhance bool
}

// NewRenderer provides a Renderer. Without options it renders DefaultWidth
// columns of the medium profile, monochrome, with enhancement.
func NewRenderer(opts ...RenderOpt) *Renderer {
	r := Renderer{
		width:   DefaultWidth,
		enhance: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.profile == nil {
		r.profile, _ = BuiltinProfiles().Lookup(DefaultProfile)
	}
	if r.width < 1 {
		r.width = 1
	}
	return &r
}

// Width returns the output width in characters.
func (r *Renderer) Width() int {
	return r.width
}

// Profile returns the quality profile in use.
func (r *Renderer) Profile() *Profile {
	return r.profile
}

// Depth returns the color depth of rendered frames.
func (r *Renderer) Depth() ColorDepth {
	if !r.color {
		return ColorNone
	}
	return r.profile.Depth()
}

// Rows returns the number of lines a srcW x srcH frame renders to.
func (r *Renderer) Rows(srcW, srcH int) int {
	if srcW <= 0 || srcH <= 0 {
		return 0
	}
	rows := int(math.Round(float64(r.width) * float64(srcH) / float64(srcW) * r.profile.Aspect))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Render converts img into a TextFrame. An empty image gives an empty frame.
func (r *Renderer) Render(img image.Image) *TextFrame {
	depth := r.Depth()
	frame := &TextFrame{Depth: depth}

	bounds := img.Bounds()
	rows := r.Rows(bounds.Dx(), bounds.Dy())
	if rows == 0 {
		return frame
	}

	if r.enhance {
		img = enhance(img)
	}

	// Both views are NRGBA with bounds at (0,0).
	small := imaging.Clone(resize.Resize(uint(r.width), uint(rows), img, resize.Bilinear))
	gray := imaging.Grayscale(small)

	alphabet := r.profile.Glyphs()
	frame.Lines = make([]Line, 0, rows)
	for y := 0; y < rows; y++ {
		lb := newLineBuilder()
		for x := 0; x < r.width; x++ {
			i := gray.PixOffset(x, y)
			glyph := alphabet.Lookup(int(gray.Pix[i]))
			code := NoColor
			if depth != ColorNone {
				p := small.Pix[i : i+3 : i+3]
				code = quantizeAt(depth, p[0], p[1], p[2])
			}
			lb.add(glyph, code)
		}
		frame.Lines = append(frame.Lines, lb.line)
	}
	return frame
}

func quantizeAt(depth ColorDepth, r, g, b uint8) Code {
	if depth == Color16 {
		return Quantize16(r, g, b)
	}
	return Quantize256(r, g, b)
}

// enhance boosts contrast and brightness a little and blurs away per-pixel
// noise before the frame is downsampled.
func enhance(img image.Image) image.Image {
	out := imaging.AdjustContrast(img, 20)
	out = imaging.AdjustBrightness(out, 4)
	return imaging.Blur(out, 0.6)
}
