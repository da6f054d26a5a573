package asciimotion

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrShortAlphabet is returned when an alphabet has fewer than two glyphs.
	ErrShortAlphabet = errors.New("asciimotion: alphabet needs at least two glyphs")
	// ErrDuplicateGlyph is returned when a glyph appears twice in an alphabet.
	ErrDuplicateGlyph = errors.New("asciimotion: duplicate glyph in alphabet")
)

// Quantize maps a brightness sample to an index into an alphabet of n glyphs.
// Brightness is clamped to [0,255] and the result always lies in [0,n-1].
func Quantize(brightness, n int) int {
	if n <= 1 {
		return 0
	}
	brightness = clamp(brightness, 0, 255)
	return clamp(brightness*(n-1)/255, 0, n-1)
}

// Alphabet is an ordered set of glyphs, darkest first. It is read-only once
// built and safe to share.
type Alphabet struct {
	glyphs []rune
	index  map[rune]int
}

// NewAlphabet builds an alphabet from s. The string is NFC normalized so that
// composed and decomposed spellings of a glyph are the same rune.
func NewAlphabet(s string) (*Alphabet, error) {
	glyphs := []rune(norm.NFC.String(s))
	if len(glyphs) < 2 {
		return nil, ErrShortAlphabet
	}
	index := make(map[rune]int, len(glyphs))
	for i, r := range glyphs {
		if _, ok := index[r]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGlyph, r)
		}
		index[r] = i
	}
	return &Alphabet{glyphs: glyphs, index: index}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of glyphs.
func (a *Alphabet) Len() int {
	return len(a.glyphs)
}

// Glyph returns the glyph at index i, clamped into range.
func (a *Alphabet) Glyph(i int) rune {
	return a.glyphs[clamp(i, 0, len(a.glyphs)-1)]
}

// Lookup returns the glyph for a brightness sample.
func (a *Alphabet) Lookup(brightness int) rune {
	return a.glyphs[Quantize(brightness, len(a.glyphs))]
}

// Index reports the position of r in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Brightness is the inverse of Lookup: the lowest gray level that maps back
// to r, so Lookup(Brightness(r)) == r for alphabets of up to 256 glyphs.
func (a *Alphabet) Brightness(r rune) (uint8, bool) {
	i, ok := a.index[r]
	if !ok {
		return 0, false
	}
	n := len(a.glyphs) - 1
	return uint8(clamp((i*255+n-1)/n, 0, 255)), true
}

func (a *Alphabet) String() string {
	return string(a.glyphs)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
