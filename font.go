package asciimotion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
)

// ErrNoFont is returned by LoadFont when no candidate parses as a TrueType font.
var ErrNoFont = errors.New("asciimotion: no usable monospace font")

// FontPaths are the monospace fonts LoadFont tries after any explicit paths.
var FontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/dejavu/DejaVuSansMono.ttf",
	"/System/Library/Fonts/Monaco.ttf",
	"/Library/Fonts/Courier New.ttf",
	"C:/Windows/Fonts/consola.ttf",
	"C:/Windows/Fonts/cour.ttf",
	"C:/Windows/Fonts/lucon.ttf",
}

// Font is a TrueType font registered with draw2d at a fixed pixel size.
type Font struct {
	Path string
	data draw2d.FontData
	size float64
}

// LoadFont loads the first of paths, then FontPaths, that parses. Empty
// paths are ignored. Missing fonts are never fatal to callers: the
// compositor falls back to solid cells.
func LoadFont(size float64, paths ...string) (*Font, error) {
	candidates := append(append([]string{}, paths...), FontPaths...)
	var errs []error
	for _, path := range candidates {
		if path == "" {
			continue
		}
		f, err := parseFont(path, size)
		if err == nil {
			return f, nil
		}
		errs = append(errs, err)
		logger().Debug("font candidate rejected", "path", path, "err", err)
	}
	if len(paths) > 0 && paths[0] != "" && len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, errs[0])
	}
	return nil, ErrNoFont
}

func parseFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	fd := draw2dFontData(filepath.Base(path))
	draw2d.RegisterFont(fd, ttf)
	return &Font{Path: path, data: fd, size: size}, nil
}

// draw2dFontData names a font for draw2d's font cache.
func draw2dFontData(name string) draw2d.FontData {
	return draw2d.FontData{Name: name, Family: draw2d.FontFamilyMono, Style: draw2d.FontStyleNormal}
}
