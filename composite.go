package asciimotion

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"unicode"

	"github.com/llgcode/draw2d/draw2dimg"
)

// ErrEmptyFrame is returned when a frame has no glyphs to composite.
var ErrEmptyFrame = errors.New("asciimotion: empty text frame")

// Backgrounds are the named canvas colors for video export.
var Backgrounds = map[string]color.RGBA{
	"black":      {0, 0, 0, 255},
	"white":      {255, 255, 255, 255},
	"dark-gray":  {64, 64, 64, 255},
	"light-gray": {192, 192, 192, 255},
}

type CompositorOpt func(c *Compositor)

// WithCellSize sets the pixel size of one character cell.
func WithCellSize(w, h int) CompositorOpt {
	return func(c *Compositor) {
		c.cellW, c.cellH = w, h
	}
}

// WithBackground sets the canvas color behind the cells.
func WithBackground(bg color.Color) CompositorOpt {
	return func(c *Compositor) {
		c.background = bg
	}
}

// WithFont draws cells as glyphs of the given font instead of solid blocks.
// A nil font keeps block mode.
func WithFont(f *Font) CompositorOpt {
	return func(c *Compositor) {
		c.font = f
	}
}

// Compositor rasterizes TextFrames into images for video encoding. Every
// glyph of the alphabet becomes a cell-sized block, either a solid rectangle
// or the glyph itself drawn with a TrueType font.
type Compositor struct {
	alphabet   *Alphabet
	cellW      int
	cellH      int
	background color.Color
	font       *Font
}

// NewCompositor provides a Compositor for frames rendered with alphabet.
// Cells default to 8x14 pixels on black.
func NewCompositor(alphabet *Alphabet, opts ...CompositorOpt) *Compositor {
	c := Compositor{
		alphabet:   alphabet,
		cellW:      8,
		cellH:      14,
		background: color.Black,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.cellW < 1 {
		c.cellW = 1
	}
	if c.cellH < 1 {
		c.cellH = 1
	}
	return &c
}

// Bounds returns the image rectangle a frame composites to.
func (c *Compositor) Bounds(f *TextFrame) image.Rectangle {
	return image.Rect(0, 0, f.Width()*c.cellW, f.Height()*c.cellH)
}

// Composite draws f. In color frames each glyph takes the color in effect on
// its line (white until a segment sets one); monochrome frames shade each
// cell by the glyph's position in the alphabet. Glyphs outside the alphabet
// leave their cell as background.
func (c *Compositor) Composite(f *TextFrame) (*image.RGBA, error) {
	bounds := c.Bounds(f)
	if bounds.Empty() {
		return nil, ErrEmptyFrame
	}
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(c.background), image.Point{}, draw.Src)

	var gc *draw2dimg.GraphicContext
	if c.font != nil {
		gc = draw2dimg.NewGraphicContext(dst)
		gc.SetFontData(c.font.data)
		gc.SetFontSize(c.font.size)
		gc.SetDPI(72)
	}

	f.EachCell(func(cell Cell) {
		fill, ok := c.fill(f.Depth, cell)
		if !ok {
			return
		}
		x, y := cell.Col*c.cellW, cell.Row*c.cellH
		if gc != nil && c.drawGlyph(gc, cell.Glyph, fill, x, y) {
			return
		}
		r := image.Rect(x, y, x+c.cellW, y+c.cellH)
		draw.Draw(dst, r, image.NewUniform(fill), image.Point{}, draw.Src)
	})
	return dst, nil
}

func (c *Compositor) fill(depth ColorDepth, cell Cell) (color.RGBA, bool) {
	if !unicode.IsPrint(cell.Glyph) {
		return color.RGBA{}, false
	}
	v, ok := c.alphabet.Brightness(cell.Glyph)
	if !ok {
		return color.RGBA{}, false
	}
	if depth == ColorNone {
		return color.RGBA{v, v, v, 255}, true
	}
	return cell.Color.RGB(), true
}

// drawGlyph draws r with its baseline a fifth of the cell above the cell's
// bottom edge. Blank glyphs draw nothing and count as drawn. It reports false
// when the font produced no advance, leaving the caller to fill the cell.
func (c *Compositor) drawGlyph(gc *draw2dimg.GraphicContext, r rune, fill color.Color, x, y int) bool {
	if unicode.IsSpace(r) {
		return true
	}
	gc.SetFillColor(fill)
	baseline := float64(y + c.cellH - c.cellH/5)
	return gc.FillStringAt(string(r), float64(x), baseline) > 0
}
