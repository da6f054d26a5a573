package asciimotion

import (
	"fmt"
	"image/color"
)

// ColorDepth selects how many colors a frame may use.
type ColorDepth int

const (
	ColorNone ColorDepth = iota // monochrome glyphs only
	Color16                     // basic ANSI colors
	Color256                    // xterm 256-color palette
)

// DepthFor maps a profile color count to a depth. Anything other than 16
// gets the full palette.
func DepthFor(colors int) ColorDepth {
	if colors == 16 {
		return Color16
	}
	return Color256
}

func (d ColorDepth) String() string {
	switch d {
	case Color16:
		return "16"
	case Color256:
		return "256"
	default:
		return "none"
	}
}

// Code is an xterm palette index. 0-15 are the basic colors, 16-231 the
// 6x6x6 cube and 232-255 the gray ramp.
type Code int16

// NoColor marks a segment that carries no color change.
const NoColor Code = -1

// Basic color codes produced by Quantize16.
const (
	Black     Code = 0
	LightGray Code = 7
	DarkGray  Code = 8
	Red       Code = 9
	Green     Code = 10
	Yellow    Code = 11
	Blue      Code = 12
	Magenta   Code = 13
	Cyan      Code = 14
	White     Code = 15
)

const (
	cubeBlack  Code = 16
	cubeWhite  Code = 231
	grayStart  Code = 232
	grayEnd    Code = 255
	grayLevels      = 23
)

var basicColors = [16]color.RGBA{
	{0, 0, 0, 255}, {128, 0, 0, 255}, {0, 128, 0, 255}, {128, 128, 0, 255},
	{0, 0, 128, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {192, 192, 192, 255},
	{128, 128, 128, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{0, 0, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

var defaultColor = color.RGBA{255, 255, 255, 255}

// Quantize256 maps an RGB triple onto the xterm 256-color palette. Pure grays
// go to the gray ramp (or the cube corners at the extremes), everything else
// to the color cube.
func Quantize256(r, g, b uint8) Code {
	if r == g && g == b {
		switch {
		case r < 8:
			return cubeBlack
		case r > 248:
			return cubeWhite
		}
		step := (int(r)*grayLevels + 127) / 255
		return grayStart + Code(step)
	}
	return cubeBlack + Code(36*cubeLevel(r)+6*cubeLevel(g)+cubeLevel(b))
}

func cubeLevel(c uint8) int {
	return int(c) * 5 / 255
}

// Quantize16 maps an RGB triple onto the basic ANSI colors. Checks run in
// order: gray, single dominant channel, pairs of channels above half
// intensity, then light gray.
func Quantize16(r, g, b uint8) Code {
	if r == g && g == b {
		switch {
		case r < 64:
			return Black
		case r < 128:
			return DarkGray
		case r < 192:
			return LightGray
		default:
			return White
		}
	}
	switch {
	case r > g && r > b:
		return Red
	case g > r && g > b:
		return Green
	case b > r && b > g:
		return Blue
	case r > 128 && g > 128:
		return Yellow
	case r > 128 && b > 128:
		return Magenta
	case g > 128 && b > 128:
		return Cyan
	}
	return LightGray
}

// QuantizeColor maps c at the given depth. ColorNone yields NoColor.
func QuantizeColor(c color.Color, depth ColorDepth) Code {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	switch depth {
	case Color16:
		return Quantize16(r8, g8, b8)
	case Color256:
		return Quantize256(r8, g8, b8)
	}
	return NoColor
}

// RGB returns a representative color for the code. It never fails: codes
// outside the palette come back white.
func (c Code) RGB() color.RGBA {
	switch {
	case c >= grayStart && c <= grayEnd:
		v := uint8(int(c-grayStart) * 255 / grayLevels)
		return color.RGBA{v, v, v, 255}
	case c >= cubeBlack && c <= cubeWhite:
		n := int(c - cubeBlack)
		return color.RGBA{uint8(n / 36 * 51), uint8(n % 36 / 6 * 51), uint8(n % 6 * 51), 255}
	case c >= 0 && c < 16:
		return basicColors[c]
	}
	return defaultColor
}

// SGR returns the escape sequence that selects c as foreground color.
func (c Code) SGR(depth ColorDepth) string {
	if c == NoColor {
		return ""
	}
	switch depth {
	case Color256:
		return fmt.Sprintf("\033[38;5;%dm", c)
	case Color16:
		if c < 8 {
			return fmt.Sprintf("\033[%dm", 30+c)
		}
		if c < 16 {
			return fmt.Sprintf("\033[%dm", 90+c-8)
		}
	}
	return ""
}

// sgrReset restores the terminal's default rendition.
const sgrReset = "\033[0m"
